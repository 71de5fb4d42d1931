package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kiwari-pos/dinein/internal/catalog"
	"github.com/kiwari-pos/dinein/internal/order"
)

// TableHandler serves the table selection screen: the floor, the chosen
// table and the guest counter.
type TableHandler struct {
	store  OrderStore
	tables []catalog.Table
}

func NewTableHandler(store OrderStore, tables []catalog.Table) *TableHandler {
	return &TableHandler{store: store, tables: tables}
}

// RegisterRoutes registers table and guest endpoints on the given Chi router.
func (h *TableHandler) RegisterRoutes(r chi.Router) {
	r.Get("/tables", h.List)
	r.Put("/session/table", h.Select)
	r.Delete("/session/table", h.Deselect)
	r.Put("/session/guests", h.SetGuests)
	r.Post("/session/guests/increment", h.IncrementGuests)
	r.Post("/session/guests/decrement", h.DecrementGuests)
}

// --- Request / Response types ---

type selectTableRequest struct {
	TableID int `json:"table_id"`
}

type guestsRequest struct {
	Count *int `json:"count"`
}

type tableSummary struct {
	Available int `json:"available"`
	Occupied  int `json:"occupied"`
	Reserved  int `json:"reserved"`
}

type tableListResponse struct {
	Tables        []catalog.Table `json:"tables"`
	Summary       tableSummary    `json:"summary"`
	SelectedTable *catalog.Table  `json:"selected_table"`
	GuestCount    int             `json:"guest_count"`
}

// --- Handlers ---

func (h *TableHandler) List(w http.ResponseWriter, r *http.Request) {
	counts := catalog.CountByStatus(h.tables)
	state := h.store.State()
	writeJSON(w, http.StatusOK, tableListResponse{
		Tables: h.tables,
		Summary: tableSummary{
			Available: counts[catalog.TableAvailable],
			Occupied:  counts[catalog.TableOccupied],
			Reserved:  counts[catalog.TableReserved],
		},
		SelectedTable: state.SelectedTable,
		GuestCount:    state.GuestCount,
	})
}

// Select seats the session at a table. Only available tables can be picked.
func (h *TableHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req selectTableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	table, err := catalog.FindTable(h.tables, req.TableID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "table not found"})
		return
	}
	if !table.Selectable() {
		writeJSON(w, http.StatusConflict, map[string]string{"error": catalog.ErrTableNotOpen.Error()})
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(h.store.Dispatch(order.SetTable{Table: &table})))
}

func (h *TableHandler) Deselect(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toSessionResponse(h.store.Dispatch(order.SetTable{})))
}

// SetGuests stores the guest count, clamped to the allowed range.
func (h *TableHandler) SetGuests(w http.ResponseWriter, r *http.Request) {
	var req guestsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Count == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "count is required"})
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(h.store.Dispatch(order.SetGuests{Count: *req.Count})))
}

func (h *TableHandler) IncrementGuests(w http.ResponseWriter, r *http.Request) {
	count := h.store.State().GuestCount + 1
	writeJSON(w, http.StatusOK, toSessionResponse(h.store.Dispatch(order.SetGuests{Count: count})))
}

func (h *TableHandler) DecrementGuests(w http.ResponseWriter, r *http.Request) {
	count := h.store.State().GuestCount - 1
	writeJSON(w, http.StatusOK, toSessionResponse(h.store.Dispatch(order.SetGuests{Count: count})))
}
