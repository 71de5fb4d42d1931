package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kiwari-pos/dinein/internal/catalog"
	"github.com/kiwari-pos/dinein/internal/order"
)

// MenuHandler serves the menu browsing grid.
type MenuHandler struct {
	store OrderStore
	menu  []catalog.MenuItem
}

func NewMenuHandler(store OrderStore, menu []catalog.MenuItem) *MenuHandler {
	return &MenuHandler{store: store, menu: menu}
}

// RegisterRoutes registers menu endpoints on the given Chi router.
func (h *MenuHandler) RegisterRoutes(r chi.Router) {
	r.Get("/menu", h.List)
}

type menuItemResponse struct {
	catalog.MenuItem
	InCart int `json:"in_cart"`
}

type menuResponse struct {
	Category catalog.Category   `json:"category"`
	Query    string             `json:"q,omitempty"`
	Items    []menuItemResponse `json:"items"`
	Totals   order.Totals       `json:"cart_totals"`
}

// List filters the menu by ?category= and ?q= and annotates each item with
// how many are already in the cart.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	writeMenu(w, r, h.menu, h.store.State().Cart)
}

// writeMenu is shared by the guest menu and the cashier grid.
func writeMenu(w http.ResponseWriter, r *http.Request, menu []catalog.MenuItem, cart []order.CartLine) {
	category, err := catalog.ParseCategory(r.URL.Query().Get("category"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	query := r.URL.Query().Get("q")

	qty := make(map[string]int, len(cart))
	for _, l := range cart {
		qty[l.Item.ID] = l.Quantity
	}

	items := catalog.FilterMenu(menu, category, query)
	resp := menuResponse{
		Category: category,
		Query:    query,
		Items:    make([]menuItemResponse, 0, len(items)),
		Totals:   order.Summarize(cart),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, menuItemResponse{MenuItem: it, InCart: qty[it.ID]})
	}
	writeJSON(w, http.StatusOK, resp)
}
