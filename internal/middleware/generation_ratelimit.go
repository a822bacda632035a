package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/unwind-app/unwind-backend/pkg/clientip"
)

// Generation rate limit: per-IP token bucket over the endpoints that trigger a
// model call (reframe, advice, affirmation, daily message). ~6 req/min with a
// burst of 5 - enough for an interactive session, blocks runaway clients.
const (
	generationRPS        = 0.1 // ~6/min
	generationBurst      = 5
	generationCleanupInt = 5 * time.Minute
	generationLimiterTTL = 30 * time.Minute
)

type generationLimiterEntry struct {
	limiter *rate.Limiter
	lastUse time.Time
}

var (
	generationEntries   = make(map[string]*generationLimiterEntry)
	generationEntriesMu sync.Mutex
	generationCleanup   bool
)

func getGenerationLimiter(ip string) *rate.Limiter {
	generationEntriesMu.Lock()
	defer generationEntriesMu.Unlock()
	startGenerationCleanupOnce()

	e, ok := generationEntries[ip]
	if !ok {
		e = &generationLimiterEntry{
			limiter: rate.NewLimiter(rate.Limit(generationRPS), generationBurst),
			lastUse: time.Now(),
		}
		generationEntries[ip] = e
	}
	e.lastUse = time.Now()
	return e.limiter
}

func startGenerationCleanupOnce() {
	if generationCleanup {
		return
	}
	generationCleanup = true
	go func() {
		ticker := time.NewTicker(generationCleanupInt)
		defer ticker.Stop()
		for range ticker.C {
			generationEntriesMu.Lock()
			now := time.Now()
			for k, e := range generationEntries {
				if now.Sub(e.lastUse) > generationLimiterTTL {
					delete(generationEntries, k)
				}
			}
			generationEntriesMu.Unlock()
		}
	}()
}

// GenerationRateLimit applies the per-IP limiter. Mount it only on routes
// whose handlers may call the generation service.
func GenerationRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientip.RealClientIP(r)
		limiter := getGenerationLimiter(ip)

		if !limiter.Allow() {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(generationBurst))
			w.Header().Set("X-RateLimit-Remaining", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"success":false,"message":"Too many generation requests. Take a breath and try again in a minute."}`))
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(generationBurst))
		next.ServeHTTP(w, r)
	})
}
