package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kiwari-pos/dinein/internal/catalog"
	"github.com/kiwari-pos/dinein/internal/order"
)

// CartHandler serves the shopping cart. The same handler backs the
// cashier's order panel with a separate store.
type CartHandler struct {
	store OrderStore
	menu  []catalog.MenuItem
}

func NewCartHandler(store OrderStore, menu []catalog.MenuItem) *CartHandler {
	return &CartHandler{store: store, menu: menu}
}

// RegisterRoutes registers cart endpoints on the given Chi router.
// Expected to be mounted at /cart
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Get)
	r.Delete("/", h.Clear)
	r.Post("/items", h.AddItem)
	r.Put("/items/{id}", h.UpdateQuantity)
	r.Delete("/items/{id}", h.RemoveItem)
}

// --- Request / Response types ---

type addItemRequest struct {
	ItemID string `json:"item_id"`
	Notes  string `json:"notes"`
}

type quantityRequest struct {
	Quantity *int `json:"quantity"`
}

type cartResponse struct {
	Lines  []order.CartLine `json:"lines"`
	Totals order.Totals     `json:"totals"`
}

func toCartResponse(s order.State) cartResponse {
	return cartResponse{Lines: s.Cart, Totals: order.Summarize(s.Cart)}
}

// --- Handlers ---

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toCartResponse(h.store.State()))
}

// AddItem adds one unit of a menu item. Notes only stick to a new line.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.ItemID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "item_id is required"})
		return
	}

	item, err := catalog.FindItem(h.menu, req.ItemID)
	if err != nil {
		if errors.Is(err, catalog.ErrItemNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "menu item not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	state := h.store.Dispatch(order.AddItem{Item: item, Notes: req.Notes})
	writeJSON(w, http.StatusCreated, toCartResponse(state))
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req quantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Quantity == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "quantity is required"})
		return
	}

	if _, ok := h.store.State().Line(id); !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not in cart"})
		return
	}

	state := h.store.Dispatch(order.SetQuantity{ID: id, Quantity: *req.Quantity})
	writeJSON(w, http.StatusOK, toCartResponse(state))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	state := h.store.Dispatch(order.RemoveItem{ID: chi.URLParam(r, "id")})
	writeJSON(w, http.StatusOK, toCartResponse(state))
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toCartResponse(h.store.Dispatch(order.ClearCart{})))
}
