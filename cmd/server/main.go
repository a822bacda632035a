package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/go-chi/chi/v5"
	"github.com/unwind-app/unwind-backend/internal/config"
	"github.com/unwind-app/unwind-backend/internal/database"
	"github.com/unwind-app/unwind-backend/internal/handlers"
	"github.com/unwind-app/unwind-backend/internal/middleware"
	"github.com/unwind-app/unwind-backend/internal/routes"
)

func main() {
	// Load env
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}
	// Load configuration
	cfg := config.Load()

	// Warn if the generation service has no credential (fallback text still works)
	if cfg.OpenAIAPIKey == "" {
		log.Println("⚠️  WARNING: OPENAI_API_KEY not set. Personalized messages will use fallback text.")
	} else {
		log.Println("✅ Generation service configured, model:", cfg.OpenAIModel)
	}

	// Open the local database (schema is created idempotently)
	log.Printf("Opening SQLite database at %s...", cfg.SQLitePath)
	if err := database.Connect(cfg.SQLitePath, cfg.Nickname); err != nil {
		log.Fatal("Failed to open SQLite database:", err)
	}
	defer database.Disconnect()

	// Wire the generative advice service
	handlers.InitAdvisor(cfg)

	// Setup router
	r := chi.NewRouter()

	// Custom CORS: set headers and respond to OPTIONS with 200 so preflight never gets 403
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	// Health check (no rate limit)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Setup routes
	routes.SetupRoutes(r)

	// Log registered routes for debugging
	log.Println("📋 Registered routes:")
	log.Println("  GET  /health")
	log.Println("  POST /api/session")
	log.Println("  GET  /api/session")
	log.Println("  POST /api/session/navigate")
	log.Println("  POST /api/journal")
	log.Println("  GET  /api/journal")
	log.Println("  GET  /api/exercises/affirmation")
	log.Println("  GET  /api/exercises/grounding")
	log.Println("  GET  /api/exercises/reframing")
	log.Println("  GET  /api/exercises/breathing")
	log.Println("  POST /api/exercises/breathing/next")
	log.Println("  GET  /api/message/today")
	log.Println("  POST /api/ai/reframe")
	log.Println("  POST /api/ai/advice")
	log.Println("  GET  /api/ai/affirmation")

	log.Printf("🚀 Unwind backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
