package handlers

import (
	"strings"

	"github.com/unwind-app/unwind-backend/internal/ai"
	"github.com/unwind-app/unwind-backend/internal/config"
)

var advisor *ai.Advisor

// InitAdvisor wires the generative advice service. Called once at startup;
// with no API key configured the advisor still works and serves fallback text.
func InitAdvisor(cfg *config.Config) {
	advisor = ai.NewAdvisor(ai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL), cfg.Nickname)
}

// extractBearerToken returns the token from an "Authorization: Bearer x" header.
func extractBearerToken(header string) string {
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
