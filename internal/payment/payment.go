package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kiwari-pos/dinein/internal/enum"
	"github.com/kiwari-pos/dinein/internal/order"
)

var (
	ErrInvalidMethod = errors.New("invalid payment method")
	ErrInvalidWallet = errors.New("invalid e-wallet")
	ErrEmptyCart     = errors.New("cart is empty")
	ErrInsufficient  = errors.New("amount received is less than total")
)

type Method string

const (
	MethodCash Method = enum.PaymentMethodCash
	MethodQRIS Method = enum.PaymentMethodQRIS
)

type Wallet string

const (
	WalletOVO    Wallet = enum.WalletOVO
	WalletDANA   Wallet = enum.WalletDANA
	WalletGoPay  Wallet = enum.WalletGoPay
	WalletShopee Wallet = enum.WalletShopee
)

// DefaultWallet is preselected on the QRIS tab.
const DefaultWallet = WalletDANA

type WalletOption struct {
	ID    Wallet `json:"id"`
	Label string `json:"label"`
}

type MethodOption struct {
	ID      Method         `json:"id"`
	Label   string         `json:"label"`
	Wallets []WalletOption `json:"wallets,omitempty"`
}

// Methods lists what the payment sheet offers, QRIS first.
func Methods() []MethodOption {
	return []MethodOption{
		{ID: MethodQRIS, Label: "QRIS", Wallets: []WalletOption{
			{ID: WalletOVO, Label: "OVO"},
			{ID: WalletDANA, Label: "DANA"},
			{ID: WalletGoPay, Label: "GoPay"},
			{ID: WalletShopee, Label: "ShopeePay"},
		}},
		{ID: MethodCash, Label: "Tunai"},
	}
}

// Request is what the guest picked on the payment sheet.
type Request struct {
	Method Method `json:"method"`
	Wallet Wallet `json:"wallet"`
	// AmountReceived is the cash tendered at the counter. Zero means the
	// exact amount.
	AmountReceived int64 `json:"amount_received"`
}

// Normalize validates r and fills in the default wallet for QRIS.
// Cash payments carry no wallet.
func (r Request) Normalize() (Request, error) {
	switch r.Method {
	case MethodCash:
		r.Wallet = ""
		if r.AmountReceived < 0 {
			return Request{}, ErrInsufficient
		}
		return r, nil
	case MethodQRIS:
		r.AmountReceived = 0
	default:
		return Request{}, ErrInvalidMethod
	}

	switch r.Wallet {
	case "":
		r.Wallet = DefaultWallet
	case WalletOVO, WalletDANA, WalletGoPay, WalletShopee:
	default:
		return Request{}, ErrInvalidWallet
	}
	return r, nil
}

type Result struct {
	Method         Method           `json:"method"`
	Wallet         Wallet           `json:"wallet,omitempty"`
	Lines          []order.CartLine `json:"lines"`
	Totals         order.Totals     `json:"totals"`
	AmountReceived int64            `json:"amount_received,omitempty"`
	Change         int64            `json:"change"`
	PaidAt         time.Time        `json:"paid_at"`
}

// OrderStore is the part of order.Store the payment flow needs.
type OrderStore interface {
	DispatchIf(a order.Action, check func(order.State) error) (order.State, error)
	State() order.State
}

// Service settles the cart of one store. Nothing is charged; the delay
// only mimics a terminal round-trip before the order completes.
type Service struct {
	store OrderStore
	delay time.Duration
	now   func() time.Time
}

func NewService(store OrderStore, delay time.Duration) *Service {
	return &Service{store: store, delay: delay, now: time.Now}
}

// Pay waits out the processing delay and then completes the order. If ctx
// ends first the cart is left untouched. The cart is checked again when the
// delay ends, in the same step that completes it, so a cart emptied or grown
// past the tendered cash in the meantime is rejected.
func (s *Service) Pay(ctx context.Context, req Request) (Result, error) {
	req, err := req.Normalize()
	if err != nil {
		return Result{}, err
	}

	check := func(st order.State) error {
		return checkCart(st.Cart, req.AmountReceived)
	}
	if err := check(s.store.State()); err != nil {
		return Result{}, err
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-timer.C:
		}
	}

	next, err := s.store.DispatchIf(order.CompleteOrder{}, check)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Method:         req.Method,
		Wallet:         req.Wallet,
		Lines:          next.LastOrder,
		Totals:         order.Summarize(next.LastOrder),
		AmountReceived: req.AmountReceived,
		PaidAt:         s.now(),
	}
	if req.AmountReceived > 0 {
		res.Change = max(0, req.AmountReceived-res.Totals.Total)
	}
	return res, nil
}

func checkCart(cart []order.CartLine, received int64) error {
	if len(cart) == 0 {
		return ErrEmptyCart
	}
	if total := order.Summarize(cart).Total; received > 0 && received < total {
		return fmt.Errorf("%w: received %d, total %d", ErrInsufficient, received, total)
	}
	return nil
}
