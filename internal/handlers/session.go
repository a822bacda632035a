package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/unwind-app/unwind-backend/internal/database"
	"github.com/unwind-app/unwind-backend/internal/services"
	"github.com/unwind-app/unwind-backend/internal/store"
)

type SessionResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message,omitempty"`
	Session *services.SessionState `json:"session,omitempty"`
}

type NavigateRequest struct {
	Page string `json:"page"`
}

// CreateSession starts a new exercise session on the home page and records
// the visit on the preferences row.
func CreateSession(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	state := services.CreateSession()

	if err := store.TouchLastLogin(database.DB, time.Now()); err != nil {
		// Bookkeeping only; the session works without it.
		log.Printf("[CreateSession] failed to record visit: %v", err)
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(SessionResponse{
		Success: true,
		Message: "Session started",
		Session: &state,
	})
}

// GetSessionState returns the current page and breathing counter.
func GetSessionState(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	token := extractBearerToken(r.Header.Get("Authorization"))
	state, err := services.GetSession(token)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(SessionResponse{
			Success: false,
			Message: "Session not found or expired",
		})
		return
	}

	json.NewEncoder(w).Encode(SessionResponse{
		Success: true,
		Session: &state,
	})
}

// NavigateSession moves the session to another page.
func NavigateSession(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req NavigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(SessionResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	token := extractBearerToken(r.Header.Get("Authorization"))
	err := services.Navigate(token, req.Page)
	switch {
	case errors.Is(err, services.ErrUnknownPage):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(SessionResponse{
			Success: false,
			Message: "Unknown page",
		})
		return
	case errors.Is(err, services.ErrSessionNotFound):
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(SessionResponse{
			Success: false,
			Message: "Session not found or expired",
		})
		return
	}

	state, err := services.GetSession(token)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(SessionResponse{
			Success: false,
			Message: "Session not found or expired",
		})
		return
	}

	json.NewEncoder(w).Encode(SessionResponse{
		Success: true,
		Session: &state,
	})
}
