package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/unwind-app/unwind-backend/internal/content"
	"github.com/unwind-app/unwind-backend/internal/services"
)

type AffirmationResponse struct {
	Success     bool   `json:"success"`
	Affirmation string `json:"affirmation"`
}

type BreathingStepResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message,omitempty"`
	Index   int                    `json:"index"`
	Step    *content.BreathingStep `json:"step,omitempty"`
}

type GroundingResponse struct {
	Success bool                    `json:"success"`
	Steps   []content.GroundingStep `json:"steps"`
}

type ReframingExerciseResponse struct {
	Success   bool     `json:"success"`
	Guidance  string   `json:"guidance"`
	Questions []string `json:"questions"`
}

// GetAffirmation returns one randomly chosen affirmation from the fixed list.
func GetAffirmation(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AffirmationResponse{
		Success:     true,
		Affirmation: content.Affirmation(),
	})
}

// GetGroundingExercise returns the 5-4-3-2-1 grounding walk in display order.
func GetGroundingExercise(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(GroundingResponse{
		Success: true,
		Steps:   content.GroundingSteps(),
	})
}

// GetReframingExercise returns the reframing guidance and challenge questions.
func GetReframingExercise(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ReframingExerciseResponse{
		Success:   true,
		Guidance:  content.ReframingGuidance(),
		Questions: content.OverthinkingQuestions(),
	})
}

// breathingStepForIndex resolves the session's step index into content.
func breathingStepForIndex(w http.ResponseWriter, index int, err error) {
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(BreathingStepResponse{
			Success: false,
			Message: "A session is required for the breathing exercise",
		})
		return
	}

	step, err := content.BreathingInstruction(index)
	if err != nil {
		// The session counter is always reduced mod 3, so this can't happen.
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(BreathingStepResponse{
			Success: false,
			Message: "Breathing step unavailable",
		})
		return
	}

	json.NewEncoder(w).Encode(BreathingStepResponse{
		Success: true,
		Index:   index,
		Step:    &step,
	})
}

// GetBreathingStep returns the session's current 4-7-8 step without advancing.
func GetBreathingStep(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	token := extractBearerToken(r.Header.Get("Authorization"))
	index, err := services.BreathingIndex(token)
	breathingStepForIndex(w, index, err)
}

// NextBreathingStep advances the session's breathing counter and returns the
// new step.
func NextBreathingStep(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	token := extractBearerToken(r.Header.Get("Authorization"))
	index, err := services.NextBreath(token)
	if err != nil && !errors.Is(err, services.ErrSessionNotFound) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(BreathingStepResponse{
			Success: false,
			Message: "Failed to advance breathing step",
		})
		return
	}
	breathingStepForIndex(w, index, err)
}
