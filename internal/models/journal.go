package models

import "time"

// Reframing methods. Every journal entry is tagged with how the reframed
// thought was produced.
const (
	MethodSelfGuided  = "self-guided"
	MethodAISuggested = "ai-suggested"
)

// ThoughtEntry is one persisted reframing: the original overthinking thought
// paired with its reframed counterpart. Entries are immutable once saved.
type ThoughtEntry struct {
	ID              int64     `json:"id"`
	OriginalThought string    `json:"original_thought"`
	ReframedThought string    `json:"reframed_thought"`
	ReframingMethod string    `json:"reframing_method"`
	CreatedAt       time.Time `json:"created_at"`
}

// ValidMethod reports whether method is one of the known reframing tags.
func ValidMethod(method string) bool {
	return method == MethodSelfGuided || method == MethodAISuggested
}
