package handler

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kiwari-pos/dinein/internal/receipt"
)

// ReceiptHandler renders the digital receipt for the session.
type ReceiptHandler struct {
	store  OrderStore
	now    func() time.Time
	serial func() int
}

func NewReceiptHandler(store OrderStore) *ReceiptHandler {
	return &ReceiptHandler{
		store:  store,
		now:    time.Now,
		serial: func() int { return rand.Intn(receipt.MaxSerial) },
	}
}

// RegisterRoutes registers receipt endpoints on the given Chi router.
func (h *ReceiptHandler) RegisterRoutes(r chi.Router) {
	r.Get("/receipt", h.Get)
}

func (h *ReceiptHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, receipt.Build(h.store.State(), h.now(), h.serial()))
}
