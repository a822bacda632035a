package services

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionDuration is 7 days, sliding from the last request.
const SessionDuration = 7 * 24 * time.Hour

// Pages of the exercise flow. Any page can navigate to any other; there is no
// terminal page.
const (
	PageHome      = "home"
	PageBreathing = "breathing"
	PageGrounding = "grounding"
	PageReframing = "reframing"
	PageJournal   = "journal"
)

var (
	ErrSessionNotFound = errors.New("session not found or expired")
	ErrUnknownPage     = errors.New("unknown page")
)

// ValidPage reports whether page names a known screen.
func ValidPage(page string) bool {
	switch page {
	case PageHome, PageBreathing, PageGrounding, PageReframing, PageJournal:
		return true
	}
	return false
}

// session holds transient per-session UI state. Nothing here is persisted:
// restarting the process starts everyone back at home with a fresh counter.
type session struct {
	token          string
	page           string
	breathingIndex int
	createdAt      time.Time
	lastSeen       time.Time

	// Cached result of the today-message lookup, valid only for cachedDate.
	cachedMessage string
	cachedDate    string
}

var (
	sessions   = make(map[string]*session)
	sessionsMu sync.Mutex
)

// SessionState is a copy of the session's visible state, safe to hand out.
type SessionState struct {
	Token          string    `json:"token"`
	Page           string    `json:"page"`
	BreathingIndex int       `json:"breathing_index"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateSession starts a new session on the home page with the breathing
// counter at zero and returns its token.
func CreateSession() SessionState {
	now := time.Now()
	s := &session{
		token:     uuid.NewString(),
		page:      PageHome,
		createdAt: now,
		lastSeen:  now,
	}

	sessionsMu.Lock()
	sessions[s.token] = s
	sessionsMu.Unlock()

	return SessionState{Token: s.token, Page: s.page, BreathingIndex: s.breathingIndex, CreatedAt: s.createdAt}
}

// getSession returns the live session for token, expiring it lazily.
// Callers must hold sessionsMu.
func getSession(token string) (*session, bool) {
	s, ok := sessions[token]
	if !ok {
		return nil, false
	}
	if time.Since(s.lastSeen) > SessionDuration {
		delete(sessions, token)
		return nil, false
	}
	s.lastSeen = time.Now()
	return s, true
}

// GetSession returns the visible state for token, or ErrSessionNotFound.
func GetSession(token string) (SessionState, error) {
	sessionsMu.Lock()
	defer sessionsMu.Unlock()

	s, ok := getSession(token)
	if !ok {
		return SessionState{}, ErrSessionNotFound
	}
	return SessionState{Token: s.token, Page: s.page, BreathingIndex: s.breathingIndex, CreatedAt: s.createdAt}, nil
}

// InvalidateSession removes a session. Unknown tokens are a no-op.
func InvalidateSession(token string) {
	sessionsMu.Lock()
	delete(sessions, token)
	sessionsMu.Unlock()
}

// Navigate moves the session to page. All transitions are allowed.
func Navigate(token, page string) error {
	if !ValidPage(page) {
		return ErrUnknownPage
	}

	sessionsMu.Lock()
	defer sessionsMu.Unlock()

	s, ok := getSession(token)
	if !ok {
		return ErrSessionNotFound
	}
	s.page = page
	return nil
}

// BreathingIndex returns the current breathing step without advancing it.
func BreathingIndex(token string) (int, error) {
	sessionsMu.Lock()
	defer sessionsMu.Unlock()

	s, ok := getSession(token)
	if !ok {
		return 0, ErrSessionNotFound
	}
	return s.breathingIndex, nil
}

// NextBreath advances the breathing counter and returns the new step index.
// The modulo keeps the index inside [0, 2] so the content lookup can't fail.
func NextBreath(token string) (int, error) {
	sessionsMu.Lock()
	defer sessionsMu.Unlock()

	s, ok := getSession(token)
	if !ok {
		return 0, ErrSessionNotFound
	}
	s.breathingIndex = (s.breathingIndex + 1) % 3
	return s.breathingIndex, nil
}

func dateKey(now time.Time) string {
	return now.Local().Format("2006-01-02")
}

// CachedTodayMessage returns the session's cached daily message when it was
// cached for now's calendar date. A date change invalidates the cache.
func CachedTodayMessage(token string, now time.Time) (string, bool, error) {
	sessionsMu.Lock()
	defer sessionsMu.Unlock()

	s, ok := getSession(token)
	if !ok {
		return "", false, ErrSessionNotFound
	}
	if s.cachedDate != dateKey(now) || s.cachedMessage == "" {
		return "", false, nil
	}
	return s.cachedMessage, true, nil
}

// CacheTodayMessage remembers message as today's daily message for the session.
func CacheTodayMessage(token string, now time.Time, message string) error {
	sessionsMu.Lock()
	defer sessionsMu.Unlock()

	s, ok := getSession(token)
	if !ok {
		return ErrSessionNotFound
	}
	s.cachedMessage = message
	s.cachedDate = dateKey(now)
	return nil
}
