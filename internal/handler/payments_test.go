package handler_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/kiwari-pos/dinein/internal/catalog"
	"github.com/kiwari-pos/dinein/internal/handler"
	"github.com/kiwari-pos/dinein/internal/order"
	"github.com/kiwari-pos/dinein/internal/payment"
)

var errUnexpected = errors.New("unexpected")

type mockPayer struct {
	payFn func(ctx context.Context, req payment.Request) (payment.Result, error)
}

func (m *mockPayer) Pay(ctx context.Context, req payment.Request) (payment.Result, error) {
	return m.payFn(ctx, req)
}

func newPaymentRouter(payer handler.Payer) chi.Router {
	r := chi.NewRouter()
	r.Route("/payment", handler.NewPaymentHandler(payer).RegisterRoutes)
	return r
}

func TestPaymentMethods(t *testing.T) {
	rr := doJSON(t, newPaymentRouter(&mockPayer{}), "GET", "/payment/methods", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"ShopeePay"`) {
		t.Errorf("expected ShopeePay wallet in %s", rr.Body.String())
	}
}

func TestPay_CompletesSessionOrder(t *testing.T) {
	store := order.NewStore()
	menu := catalog.Menu()
	store.Dispatch(order.AddItem{Item: menu[0]})
	store.Dispatch(order.AddItem{Item: menu[6]})

	r := newPaymentRouter(payment.NewService(store, 0))
	rr := postJSON(t, r, "/payment", map[string]string{"method": "qris", "wallet": "gopay"})
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d; body: %s", rr.Code, rr.Body.String())
	}

	resp := decodeResponse(t, rr)
	if resp["wallet"] != "gopay" {
		t.Errorf("wallet: got %v", resp["wallet"])
	}
	totals := cartTotals(t, resp)
	// 65000 + 28000 = 93000, tax 10230
	if totals["total"] != float64(103230) {
		t.Errorf("total: got %v", totals["total"])
	}

	st := store.State()
	if len(st.Cart) != 0 || len(st.LastOrder) != 2 {
		t.Errorf("after payment: cart %d lines, last order %d lines", len(st.Cart), len(st.LastOrder))
	}
}

func TestPay_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid method", payment.ErrInvalidMethod, http.StatusBadRequest},
		{"invalid wallet", payment.ErrInvalidWallet, http.StatusBadRequest},
		{"empty cart", payment.ErrEmptyCart, http.StatusUnprocessableEntity},
		{"insufficient cash", payment.ErrInsufficient, http.StatusUnprocessableEntity},
		{"canceled", context.Canceled, http.StatusRequestTimeout},
		{"unexpected", errUnexpected, http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			payer := &mockPayer{payFn: func(context.Context, payment.Request) (payment.Result, error) {
				return payment.Result{}, tc.err
			}}
			rr := postJSON(t, newPaymentRouter(payer), "/payment", map[string]string{"method": "cash"})
			if rr.Code != tc.want {
				t.Errorf("status: got %d, want %d", rr.Code, tc.want)
			}
		})
	}
}

func TestReceipt(t *testing.T) {
	store := order.NewStore()
	r := chi.NewRouter()
	handler.NewReceiptHandler(store).RegisterRoutes(r)

	rr := doJSON(t, r, "GET", "/receipt", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d", rr.Code)
	}
	resp := decodeResponse(t, rr)
	if resp["preview"] != true {
		t.Error("empty session should render a preview receipt")
	}
	if id, _ := resp["order_id"].(string); !strings.HasPrefix(id, "KOU-") || len(id) != len("KOU-20261007-0042") {
		t.Errorf("order id: got %q", id)
	}

	store.Dispatch(order.AddItem{Item: catalog.Menu()[1]})
	store.Dispatch(order.CompleteOrder{})

	resp = decodeResponse(t, doJSON(t, r, "GET", "/receipt", nil))
	lines, _ := resp["lines"].([]interface{})
	if resp["preview"] != false || len(lines) != 1 {
		t.Errorf("expected the paid order, got preview=%v lines=%v", resp["preview"], lines)
	}
}
