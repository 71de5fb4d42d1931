package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kiwari-pos/dinein/internal/order"
)

// OrderStore is the session state container the screens read and dispatch to.
// Satisfied by *order.Store.
type OrderStore interface {
	Dispatch(a order.Action) order.State
	DispatchAll(actions ...order.Action) order.State
	State() order.State
}

// SessionHandler serves the onboarding screen: order mode and language.
type SessionHandler struct {
	store OrderStore
}

func NewSessionHandler(store OrderStore) *SessionHandler {
	return &SessionHandler{store: store}
}

// RegisterRoutes registers session endpoints on the given Chi router.
func (h *SessionHandler) RegisterRoutes(r chi.Router) {
	r.Get("/session", h.Get)
	r.Post("/session/start", h.Start)
	r.Put("/session/mode", h.SetMode)
	r.Put("/session/lang", h.SetLanguage)
}

// --- Request / Response types ---

type startRequest struct {
	Mode string `json:"mode"`
	Lang string `json:"lang"`
}

type modeRequest struct {
	Mode string `json:"mode"`
}

type langRequest struct {
	Lang string `json:"lang"`
}

type sessionResponse struct {
	order.State
	Totals order.Totals `json:"totals"`
}

type startResponse struct {
	Next    string          `json:"next"`
	Session sessionResponse `json:"session"`
}

func toSessionResponse(s order.State) sessionResponse {
	return sessionResponse{State: s, Totals: order.Summarize(s.Cart)}
}

// --- Handlers ---

func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toSessionResponse(h.store.State()))
}

// Start applies the onboarding choices and tells the client where to go
// next: dine-in guests pick a table, take-away goes straight to the menu.
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	mode, err := order.ParseMode(req.Mode)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	var lang order.Language
	if req.Lang != "" {
		if lang, err = order.ParseLanguage(req.Lang); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
	}

	actions := []order.Action{order.SetMode{Mode: mode}}
	if lang != "" {
		actions = append(actions, order.SetLanguage{Lang: lang})
	}
	state := h.store.DispatchAll(actions...)

	next := "menu"
	if mode == order.ModeDineIn {
		next = "tables"
	}
	writeJSON(w, http.StatusOK, startResponse{Next: next, Session: toSessionResponse(state)})
}

func (h *SessionHandler) SetMode(w http.ResponseWriter, r *http.Request) {
	var req modeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	mode, err := order.ParseMode(req.Mode)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(h.store.Dispatch(order.SetMode{Mode: mode})))
}

func (h *SessionHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	var req langRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	lang, err := order.ParseLanguage(req.Lang)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(h.store.Dispatch(order.SetLanguage{Lang: lang})))
}
