package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/unwind-app/unwind-backend/internal/handlers"
	"github.com/unwind-app/unwind-backend/internal/middleware"
)

func SetupRoutes(r *chi.Mux) {
	// Session routes
	r.Post("/api/session", handlers.CreateSession)
	r.Get("/api/session", handlers.GetSessionState)
	r.Post("/api/session/navigate", handlers.NavigateSession)

	// Thought journal routes
	r.Post("/api/journal", handlers.CreateJournalEntry)
	r.Get("/api/journal", handlers.GetJournalEntries)

	// Exercise content routes (static, no generation)
	r.Get("/api/exercises/affirmation", handlers.GetAffirmation)
	r.Get("/api/exercises/grounding", handlers.GetGroundingExercise)
	r.Get("/api/exercises/reframing", handlers.GetReframingExercise)
	r.Get("/api/exercises/breathing", handlers.GetBreathingStep)
	r.Post("/api/exercises/breathing/next", handlers.NextBreathingStep)

	// Generation routes (rate limited: each may call the model)
	r.Group(func(g chi.Router) {
		g.Use(middleware.GenerationRateLimit)
		g.Get("/api/message/today", handlers.GetTodayMessage)
		g.Post("/api/ai/reframe", handlers.ReframeThought)
		g.Post("/api/ai/advice", handlers.GetPersonalizedAdvice)
		g.Get("/api/ai/affirmation", handlers.GetAIAffirmation)
	})
}
