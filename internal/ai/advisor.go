// Package ai generates personalized supportive text. The Advisor operations
// are total: a failed or misconfigured generation call never surfaces as an
// error, only as fixed fallback text, because a broken call must not block the
// user's session.
package ai

import (
	"context"
	"fmt"
	"strings"
)

// Sampling parameters per message kind.
const (
	reframeMaxTokens = 150
	reframeTemp      = 0.7

	affirmationMaxTokens = 60
	affirmationTemp      = 0.8

	adviceMaxTokens = 200
	adviceTemp      = 0.7
)

type Advisor struct {
	client   *Client
	nickname string
}

func NewAdvisor(client *Client, nickname string) *Advisor {
	return &Advisor{client: client, nickname: nickname}
}

func (a *Advisor) systemPrompt() string {
	return "You are a warm, supportive companion helping " + a.nickname +
		" work through anxious and overthinking moments. Speak directly to them, kindly and without judgment."
}

// GenerateReframing returns a supportive reframing of an overthinking thought.
// Blank input returns an empty string without calling the service.
func (a *Advisor) GenerateReframing(ctx context.Context, originalThought string) string {
	originalThought = strings.TrimSpace(originalThought)
	if originalThought == "" {
		return ""
	}

	prompt := fmt.Sprintf(`Provide a kind, thoughtful reframing of this overthinking thought.
Use warm reassurance and speak as if you're talking directly to %s.
Keep your response to 3-4 sentences maximum.

The overthinking thought: %q

Your reframing:`, a.nickname, originalThought)

	text, err := a.client.Complete(ctx, a.systemPrompt(), prompt, reframeMaxTokens, reframeTemp)
	if err != nil {
		return fmt.Sprintf("I had trouble generating a response right now, but know that this thought is not the whole story, %s. You've come through hard moments before. (%v)", a.nickname, err)
	}
	return text
}

// GenerateAffirmation returns a short personalized affirmation, or fixed
// fallback text when generation fails.
func (a *Advisor) GenerateAffirmation(ctx context.Context) string {
	prompt := fmt.Sprintf(`Create a single short affirmation for %s to help with overthinking.
Make it affirming and supportive, with a touch of warmth or playfulness.
Keep it short (15-25 words maximum).`, a.nickname)

	text, err := a.client.Complete(ctx, a.systemPrompt(), prompt, affirmationMaxTokens, affirmationTemp)
	if err != nil {
		return fmt.Sprintf("You are enough, %s. Today and every day.", a.nickname)
	}
	return text
}

// GeneratePersonalizedAdvice returns practical supportive advice for a
// situation. Blank input returns an empty string without calling the service.
func (a *Advisor) GeneratePersonalizedAdvice(ctx context.Context, situation string) string {
	situation = strings.TrimSpace(situation)
	if situation == "" {
		return ""
	}

	prompt := fmt.Sprintf(`Provide personalized advice for this situation.
Give practical, helpful suggestions while being supportive, speaking directly to %s.
Keep your response to 3-5 sentences.

The situation: %q

Your advice:`, a.nickname, situation)

	text, err := a.client.Complete(ctx, a.systemPrompt(), prompt, adviceMaxTokens, adviceTemp)
	if err != nil {
		return fmt.Sprintf("I had trouble generating advice right now, but I'm here for you, %s. Take one small step and be gentle with yourself. (%v)", a.nickname, err)
	}
	return text
}
