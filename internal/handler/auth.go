package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/kiwari-pos/dinein/internal/auth"
)

// StaffDirectory is the roster lookup the auth handlers need.
// Satisfied by *auth.Directory.
type StaffDirectory interface {
	Authenticate(username, pin string) (auth.Staff, error)
	ByID(id uuid.UUID) (auth.Staff, error)
}

// AuthHandler handles staff sign-in for the cashier, kitchen and admin screens.
type AuthHandler struct {
	staff     StaffDirectory
	jwtSecret string
}

func NewAuthHandler(staff StaffDirectory, jwtSecret string) *AuthHandler {
	return &AuthHandler{staff: staff, jwtSecret: jwtSecret}
}

// RegisterRoutes registers auth endpoints on the given Chi router.
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/pin-login", h.PinLogin)
	r.Post("/auth/refresh", h.Refresh)
}

// --- Request / Response types ---

type pinLoginRequest struct {
	Username string `json:"username"`
	Pin      string `json:"pin"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenResponse struct {
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token"`
	User         auth.Staff `json:"user"`
}

// --- Handlers ---

// PinLogin handles username + PIN authentication.
func (h *AuthHandler) PinLogin(w http.ResponseWriter, r *http.Request) {
	var req pinLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Username == "" || req.Pin == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "username and pin are required"})
		return
	}

	staff, err := h.staff.Authenticate(req.Username, req.Pin)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
			return
		}
		log.Printf("ERROR: pin login %s: %v", req.Username, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	h.respondWithTokens(w, staff)
}

// Refresh exchanges a valid refresh token for a new access + refresh token pair.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.RefreshToken == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "refresh_token is required"})
		return
	}

	userID, err := auth.ValidateRefreshToken(h.jwtSecret, req.RefreshToken)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid refresh token"})
		return
	}

	staff, err := h.staff.ByID(userID)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "user not found"})
		return
	}

	h.respondWithTokens(w, staff)
}

// --- Helpers ---

func (h *AuthHandler) respondWithTokens(w http.ResponseWriter, staff auth.Staff) {
	accessToken, err := auth.GenerateToken(h.jwtSecret, staff.ID, staff.Role)
	if err != nil {
		log.Printf("ERROR: sign access token: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	refreshToken, err := auth.GenerateRefreshToken(h.jwtSecret, staff.ID)
	if err != nil {
		log.Printf("ERROR: sign refresh token: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         staff,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR: failed to encode JSON response: %v", err)
	}
}
