package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kiwari-pos/dinein/internal/payment"
)

// Payer settles the cart of one order store.
// Satisfied by *payment.Service.
type Payer interface {
	Pay(ctx context.Context, req payment.Request) (payment.Result, error)
}

// PaymentHandler serves the payment sheet.
type PaymentHandler struct {
	payer Payer
}

func NewPaymentHandler(payer Payer) *PaymentHandler {
	return &PaymentHandler{payer: payer}
}

// RegisterRoutes registers payment endpoints on the given Chi router.
// Expected to be mounted at /payment
func (h *PaymentHandler) RegisterRoutes(r chi.Router) {
	r.Get("/methods", h.Methods)
	r.Post("/", h.Pay)
}

func (h *PaymentHandler) Methods(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, payment.Methods())
}

// Pay blocks for the processing delay and returns the completed order.
func (h *PaymentHandler) Pay(w http.ResponseWriter, r *http.Request) {
	var req payment.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	pay(w, r, h.payer, req)
}

// pay is shared by the guest payment sheet and the cashier checkout.
func pay(w http.ResponseWriter, r *http.Request, payer Payer, req payment.Request) {
	res, err := payer.Pay(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidMethod), errors.Is(err, payment.ErrInvalidWallet):
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, payment.ErrEmptyCart), errors.Is(err, payment.ErrInsufficient):
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			log.Printf("payment canceled: %v", err)
			writeJSON(w, http.StatusRequestTimeout, map[string]string{"error": "payment canceled"})
		default:
			log.Printf("ERROR: payment: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		}
		return
	}
	writeJSON(w, http.StatusOK, res)
}
