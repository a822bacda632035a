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

type TodayMessageResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Daily     string `json:"daily_message,omitempty"`
	Generated bool   `json:"generated"`           // true when a new message was produced on this request
	Persisted bool   `json:"persisted,omitempty"` // false when a freshly generated message could not be saved
}

// GetTodayMessage returns today's supportive message, generating and
// persisting a new one when none exists for the current date. A session token
// (Authorization: Bearer) is optional; with one, the per-session cache is
// consulted first and refreshed.
func GetTodayMessage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	now := time.Now()
	token := extractBearerToken(r.Header.Get("Authorization"))

	if token != "" {
		if cached, ok, err := services.CachedTodayMessage(token, now); err == nil && ok {
			json.NewEncoder(w).Encode(TodayMessageResponse{
				Success:   true,
				Daily:     cached,
				Persisted: true,
			})
			return
		}
	}

	message, found, err := store.GetTodayMessage(database.DB, now)
	if err != nil {
		// Storage trouble degrades the feature, never the process.
		log.Printf("[GetTodayMessage] store query failed: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(TodayMessageResponse{
			Success: false,
			Message: "Daily message is unavailable right now",
		})
		return
	}

	generated := false
	persisted := found
	if !found {
		message = advisor.GenerateAffirmation(r.Context())
		generated = true
		if _, err := store.SaveDailyMessage(database.DB, message); err != nil {
			log.Printf("[GetTodayMessage] failed to persist generated message: %v", err)
		} else {
			persisted = true
		}
	}

	if token != "" {
		if err := services.CacheTodayMessage(token, now, message); err != nil && !errors.Is(err, services.ErrSessionNotFound) {
			log.Printf("[GetTodayMessage] failed to cache message: %v", err)
		}
	}

	json.NewEncoder(w).Encode(TodayMessageResponse{
		Success:   true,
		Daily:     message,
		Generated: generated,
		Persisted: persisted,
	})
}
