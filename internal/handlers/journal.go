package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/unwind-app/unwind-backend/internal/database"
	"github.com/unwind-app/unwind-backend/internal/models"
	"github.com/unwind-app/unwind-backend/internal/store"
)

type CreateJournalEntryRequest struct {
	OriginalThought string `json:"original_thought"`
	ReframedThought string `json:"reframed_thought"`
	Method          string `json:"method"`
}

type CreateJournalEntryResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Entry   *models.ThoughtEntry `json:"entry,omitempty"`
}

type GetJournalEntriesResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message,omitempty"`
	Entries []models.ThoughtEntry `json:"entries"`
	Total   int                   `json:"total"`
}

// CreateJournalEntry saves one reframed thought to the journal.
func CreateJournalEntry(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req CreateJournalEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(CreateJournalEntryResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	// Entries saved by hand default to the self-guided tag.
	method := req.Method
	if method == "" {
		method = models.MethodSelfGuided
	}

	id, err := store.SaveThoughtEntry(database.DB, req.OriginalThought, req.ReframedThought, method)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmptyThought):
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateJournalEntryResponse{
				Success: false,
				Message: "Nothing to save - both thoughts are required",
			})
		case errors.Is(err, store.ErrInvalidMethod):
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateJournalEntryResponse{
				Success: false,
				Message: "Unknown reframing method",
			})
		default:
			log.Printf("[CreateJournalEntry] save failed: %v", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CreateJournalEntryResponse{
				Success: false,
				Message: "Failed to save journal entry",
			})
		}
		return
	}

	entries, err := store.GetThoughtEntries(database.DB)
	if err != nil {
		// The save committed; return success even if the readback failed.
		log.Printf("[CreateJournalEntry] readback failed: %v", err)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateJournalEntryResponse{
			Success: true,
			Message: "Journal entry saved",
		})
		return
	}

	var saved *models.ThoughtEntry
	for i := range entries {
		if entries[i].ID == id {
			saved = &entries[i]
			break
		}
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateJournalEntryResponse{
		Success: true,
		Message: "Journal entry saved",
		Entry:   saved,
	})
}

// GetJournalEntries returns every journal entry, newest first.
func GetJournalEntries(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	entries, err := store.GetThoughtEntries(database.DB)
	if err != nil {
		log.Printf("[GetJournalEntries] query failed: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(GetJournalEntriesResponse{
			Success: false,
			Message: "Failed to load journal entries",
			Entries: []models.ThoughtEntry{},
		})
		return
	}

	json.NewEncoder(w).Encode(GetJournalEntriesResponse{
		Success: true,
		Entries: entries,
		Total:   len(entries),
	})
}
