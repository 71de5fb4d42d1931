package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/kiwari-pos/dinein/internal/kitchen"
)

// TicketBoard is the kitchen display state. Satisfied by *kitchen.Board.
type TicketBoard interface {
	Add(t kitchen.Ticket) (kitchen.Ticket, error)
	Advance(id string) (kitchen.Ticket, bool)
	Get(id string) (kitchen.Ticket, bool)
	Tickets(status kitchen.Status) []kitchen.Ticket
	Counts() kitchen.Counts
}

// KitchenHandler serves the kitchen display.
type KitchenHandler struct {
	board TicketBoard
	now   func() time.Time
}

func NewKitchenHandler(board TicketBoard) *KitchenHandler {
	return &KitchenHandler{board: board, now: time.Now}
}

// RegisterRoutes registers kitchen endpoints on the given Chi router.
// Expected to be mounted at /kitchen
func (h *KitchenHandler) RegisterRoutes(r chi.Router) {
	r.Get("/stats", h.Stats)
	r.Get("/tickets", h.List)
	r.Post("/tickets", h.Create)
	r.Get("/tickets/{id}", h.Get)
	r.Post("/tickets/{id}/advance", h.Advance)
}

// --- Request / Response types ---

type createTicketRequest struct {
	ID         string               `json:"id"`
	TableLabel string               `json:"table_label"`
	Items      []kitchen.TicketItem `json:"items"`
}

type ticketListResponse struct {
	Tickets []kitchen.Ticket `json:"tickets"`
	Counts  kitchen.Counts   `json:"counts"`
}

// --- Handlers ---

// List returns tickets, optionally filtered by ?status=new|cooking|ready.
// Counts always cover the whole board.
func (h *KitchenHandler) List(w http.ResponseWriter, r *http.Request) {
	status, err := kitchen.ParseStatus(r.URL.Query().Get("status"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, ticketListResponse{
		Tickets: h.board.Tickets(status),
		Counts:  h.board.Counts(),
	})
}

func (h *KitchenHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.board.Counts())
}

func (h *KitchenHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, ok := h.board.Get(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": kitchen.ErrTicketNotFound.Error()})
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// Create puts a new ticket on the board. Its status is always new.
func (h *KitchenHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.TableLabel == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "table_label is required"})
		return
	}
	for _, it := range req.Items {
		if it.Name == "" || it.Qty <= 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "each item needs a name and a positive qty"})
			return
		}
	}

	id := req.ID
	if id == "" {
		id = "ORD-" + strings.ToUpper(uuid.NewString()[:8])
	}

	t, err := h.board.Add(kitchen.Ticket{
		ID:         id,
		TableLabel: req.TableLabel,
		Items:      req.Items,
		PlacedAt:   h.now().Format("15:04"),
		Elapsed:    "0 min",
	})
	if err != nil {
		switch {
		case errors.Is(err, kitchen.ErrEmptyTicket):
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, kitchen.ErrDuplicateTicket):
			writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
		default:
			log.Printf("ERROR: add ticket %s: %v", id, err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		}
		return
	}

	writeJSON(w, http.StatusCreated, t)
}

// Advance moves a ticket one stage forward. Advancing a ready ticket is a
// no-op that still returns it.
func (h *KitchenHandler) Advance(w http.ResponseWriter, r *http.Request) {
	t, ok := h.board.Advance(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": kitchen.ErrTicketNotFound.Error()})
		return
	}
	writeJSON(w, http.StatusOK, t)
}
