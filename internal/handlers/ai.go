package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/unwind-app/unwind-backend/internal/database"
	"github.com/unwind-app/unwind-backend/internal/models"
	"github.com/unwind-app/unwind-backend/internal/store"
)

type ReframeThoughtRequest struct {
	Thought string `json:"thought"`
	Save    bool   `json:"save,omitempty"` // persist the pair to the journal as ai-suggested
}

type ReframeThoughtResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message,omitempty"`
	ReframedThought string `json:"reframed_thought,omitempty"`
	EntryID         int64  `json:"entry_id,omitempty"`
}

type AdviceRequest struct {
	Situation string `json:"situation"`
}

type AdviceResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Advice  string `json:"advice,omitempty"`
}

type AIAffirmationResponse struct {
	Success     bool   `json:"success"`
	Affirmation string `json:"affirmation"`
}

// ReframeThought asks the advice service for a supportive reframing of an
// overthinking thought, optionally saving the pair to the journal. Generation
// failures never error out here - the advisor substitutes fallback text.
func ReframeThought(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req ReframeThoughtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ReframeThoughtResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	if strings.TrimSpace(req.Thought) == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ReframeThoughtResponse{
			Success: false,
			Message: "Nothing to reframe - the thought is empty",
		})
		return
	}

	reframed := advisor.GenerateReframing(r.Context(), req.Thought)

	resp := ReframeThoughtResponse{
		Success:         true,
		ReframedThought: reframed,
	}
	if req.Save {
		id, err := store.SaveThoughtEntry(database.DB, req.Thought, reframed, models.MethodAISuggested)
		if err != nil {
			// The reframing itself succeeded; report the save problem only.
			log.Printf("[ReframeThought] save failed: %v", err)
			resp.Message = "Reframing generated, but saving to the journal failed"
		} else {
			resp.EntryID = id
			resp.Message = "Saved to your journal"
		}
	}

	json.NewEncoder(w).Encode(resp)
}

// GetPersonalizedAdvice asks the advice service for guidance on a situation.
func GetPersonalizedAdvice(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req AdviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(AdviceResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	if strings.TrimSpace(req.Situation) == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(AdviceResponse{
			Success: false,
			Message: "Describe the situation first",
		})
		return
	}

	json.NewEncoder(w).Encode(AdviceResponse{
		Success: true,
		Advice:  advisor.GeneratePersonalizedAdvice(r.Context(), req.Situation),
	})
}

// GetAIAffirmation returns a freshly generated personalized affirmation.
func GetAIAffirmation(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AIAffirmationResponse{
		Success:     true,
		Affirmation: advisor.GenerateAffirmation(r.Context()),
	})
}
