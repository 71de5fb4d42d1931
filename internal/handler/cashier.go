package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kiwari-pos/dinein/internal/catalog"
	"github.com/kiwari-pos/dinein/internal/payment"
)

// CashierHandler serves the counter POS. The cashier builds orders in its
// own store, independent of the guest session.
type CashierHandler struct {
	store OrderStore
	payer Payer
	menu  []catalog.MenuItem
	cart  *CartHandler
}

func NewCashierHandler(store OrderStore, payer Payer, menu []catalog.MenuItem) *CashierHandler {
	return &CashierHandler{
		store: store,
		payer: payer,
		menu:  menu,
		cart:  NewCartHandler(store, menu),
	}
}

// RegisterRoutes registers cashier endpoints on the given Chi router.
// Expected to be mounted at /cashier
func (h *CashierHandler) RegisterRoutes(r chi.Router) {
	r.Get("/menu", h.Menu)
	r.Route("/order", func(r chi.Router) {
		h.cart.RegisterRoutes(r)
		r.Post("/checkout", h.Checkout)
	})
}

func (h *CashierHandler) Menu(w http.ResponseWriter, r *http.Request) {
	writeMenu(w, r, h.menu, h.store.State().Cart)
}

// Checkout takes payment for the current counter order and empties it.
func (h *CashierHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req payment.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	pay(w, r, h.payer, req)
}
