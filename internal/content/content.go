// Package content holds the fixed exercise material: affirmations, the 4-7-8
// breathing sequence, the 5-4-3-2-1 grounding walk, and the thought-reframing
// prompts. Everything is static; Affirmation is the only randomized lookup.
package content

import (
	"errors"
	"math/rand"
)

// ErrStepOutOfRange is returned for a breathing step index outside [0, 2].
var ErrStepOutOfRange = errors.New("breathing step index out of range")

// BreathingStep is one phase of the 4-7-8 technique.
type BreathingStep struct {
	Instruction     string `json:"instruction"`
	DurationSeconds int    `json:"duration_seconds"`
}

// GroundingStep is one sense in the 5-4-3-2-1 exercise. Order matters: five
// senses counting down.
type GroundingStep struct {
	Sense       string `json:"sense"`
	Instruction string `json:"instruction"`
}

var affirmations = []string{
	"You are stronger than your anxious thoughts.",
	"This moment of overthinking will pass.",
	"You've gotten through difficult moments before. Remember how brave you are?",
	"Your thoughts are not facts.",
	"You are doing the best you can right now, and that's all that matters.",
	"Take a breath. You are enough exactly as you are.",
	"You are capable of finding calm in the storm.",
	"This feeling is temporary. One day you'll look back and smile at today's worries.",
	"Your worth is not determined by your thoughts.",
	"Breathe in peace, breathe out worry.",
	"You are safe in this moment.",
	"One thought at a time, one moment at a time.",
	"Your mind is a tool, not your master.",
	"It's okay to rest. Your thoughts will be clearer in the morning.",
}

var breathingSteps = [3]BreathingStep{
	{Instruction: "Inhale slowly through your nose", DurationSeconds: 4},
	{Instruction: "Hold your breath", DurationSeconds: 7},
	{Instruction: "Exhale completely through your mouth", DurationSeconds: 8},
}

var groundingSteps = []GroundingStep{
	{Sense: "5 Things You Can See", Instruction: "Look around and notice five things you can see. Focus on details you might not usually notice."},
	{Sense: "4 Things You Can Touch", Instruction: "Notice four things you can physically feel - the texture of your clothes, the surface you're sitting on, etc."},
	{Sense: "3 Things You Can Hear", Instruction: "Listen for three distinct sounds around you, near or far."},
	{Sense: "2 Things You Can Smell", Instruction: "What two scents can you detect? If you can't smell anything right now, think of two scents you enjoy."},
	{Sense: "1 Thing You Can Taste", Instruction: "What can you taste right now? Or think of one favorite taste you enjoy."},
}

var overthinkingQuestions = []string{
	"What evidence supports this thought?",
	"What would you tell a close friend who had this thought?",
	"Is there another way to look at this situation?",
	"Will this matter a year from now?",
	"Am I confusing a thought with a fact?",
	"What would I think about this after a good night's sleep?",
	"Am I being as kind to myself as I am to others?",
}

const reframingGuidance = `To reframe your thought, consider:

1. Is this thought a fear talking, rather than the situation itself?
2. What would you say to someone you love if they were having this thought?
3. Imagine looking back at this moment from a year away - how does the thought look from there?
4. Focus on what you can control, and let the rest be.
5. We can't predict the worst outcome any better than the best one.

Your reframed thought doesn't need to be perfectly positive - just kinder and more balanced than the original.`

// Affirmation returns one affirmation chosen uniformly at random. Repeats
// across calls are fine; nothing is memoized.
func Affirmation() string {
	return affirmations[rand.Intn(len(affirmations))]
}

// BreathingInstruction returns the step at index i of the 4-7-8 cycle
// (0 inhale, 1 hold, 2 exhale).
func BreathingInstruction(i int) (BreathingStep, error) {
	if i < 0 || i >= len(breathingSteps) {
		return BreathingStep{}, ErrStepOutOfRange
	}
	return breathingSteps[i], nil
}

// GroundingSteps returns the 5-4-3-2-1 walk in display order.
func GroundingSteps() []GroundingStep {
	steps := make([]GroundingStep, len(groundingSteps))
	copy(steps, groundingSteps)
	return steps
}

// OverthinkingQuestions returns the challenge questions in display order.
func OverthinkingQuestions() []string {
	qs := make([]string, len(overthinkingQuestions))
	copy(qs, overthinkingQuestions)
	return qs
}

// ReframingGuidance returns the guidance block shown before the user writes
// their reframed thought.
func ReframingGuidance() string {
	return reframingGuidance
}
