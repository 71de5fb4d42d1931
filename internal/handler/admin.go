package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kiwari-pos/dinein/internal/catalog"
	"github.com/kiwari-pos/dinein/internal/dashboard"
	"github.com/kiwari-pos/dinein/internal/kitchen"
)

// KitchenCounter reports live board totals.
type KitchenCounter interface {
	Counts() kitchen.Counts
}

// AdminHandler serves the owner dashboard.
type AdminHandler struct {
	tables []catalog.Table
	board  KitchenCounter
}

func NewAdminHandler(tables []catalog.Table, board KitchenCounter) *AdminHandler {
	return &AdminHandler{tables: tables, board: board}
}

// RegisterRoutes registers admin endpoints on the given Chi router.
// Expected to be mounted at /admin
func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard", h.Dashboard)
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dashboard.Build(h.tables, h.board.Counts()))
}
