// Package store is the persistence contract for the thought journal and the
// daily supportive messages. All functions take the database handle explicitly;
// validation failures never reach the database, and rows are immutable once
// written (there are no update or delete operations).
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/unwind-app/unwind-backend/internal/models"
)

var (
	// ErrEmptyThought is returned when the original or reframed text is blank
	// after trimming. Surfaced to the user as "nothing to save".
	ErrEmptyThought = errors.New("thought text is empty")
	// ErrEmptyMessage is returned when a daily message is blank after trimming.
	ErrEmptyMessage = errors.New("message text is empty")
	// ErrInvalidMethod is returned for a reframing method outside the known tags.
	ErrInvalidMethod = errors.New("unknown reframing method")
)

// SaveThoughtEntry persists one journal entry and returns its id. The store
// assigns the timestamp; the caller never updates an entry afterwards.
func SaveThoughtEntry(db *sql.DB, original, reframed, method string) (int64, error) {
	original = strings.TrimSpace(original)
	reframed = strings.TrimSpace(reframed)
	if original == "" || reframed == "" {
		return 0, ErrEmptyThought
	}
	if !models.ValidMethod(method) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMethod, method)
	}

	res, err := db.Exec(`
		INSERT INTO thought_journal (original_thought, reframed_thought, reframing_method, created_at)
		VALUES (?, ?, ?, ?)
	`, original, reframed, method, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to save thought entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted entry id: %w", err)
	}
	return id, nil
}

// GetThoughtEntries returns every journal entry, newest first. Entries created
// in the same instant fall back to insertion order, newest-inserted first.
// Returns an empty slice, never nil, when the journal is empty.
func GetThoughtEntries(db *sql.DB) ([]models.ThoughtEntry, error) {
	rows, err := db.Query(`
		SELECT id, original_thought, reframed_thought, reframing_method, created_at
		FROM thought_journal
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query thought entries: %w", err)
	}
	defer rows.Close()

	entries := make([]models.ThoughtEntry, 0)
	for rows.Next() {
		var e models.ThoughtEntry
		if err := rows.Scan(&e.ID, &e.OriginalThought, &e.ReframedThought, &e.ReframingMethod, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan thought entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read thought entries: %w", err)
	}
	return entries, nil
}

// SaveDailyMessage persists one supportive message with the current timestamp
// and returns its id. Several messages on the same calendar day are allowed;
// the today view resolves which one wins.
func SaveDailyMessage(db *sql.DB, message string) (int64, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return 0, ErrEmptyMessage
	}

	res, err := db.Exec(`INSERT INTO daily_messages (message, created_at) VALUES (?, ?)`, message, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to save daily message: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted message id: %w", err)
	}
	return id, nil
}

// GetLatestDailyMessage returns the most recently created message across all
// time, or nil when none exist.
func GetLatestDailyMessage(db *sql.DB) (*models.DailyMessage, error) {
	var m models.DailyMessage
	err := db.QueryRow(`
		SELECT id, message, created_at
		FROM daily_messages
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`).Scan(&m.ID, &m.Message, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest daily message: %w", err)
	}
	return &m, nil
}

// GetTodayMessage returns the most recently created message whose timestamp
// falls on now's local calendar date. The caller supplies the clock so the
// store stays deterministic. The second return value is false when no message
// exists for that day.
func GetTodayMessage(db *sql.DB, now time.Time) (string, bool, error) {
	local := now.Local()
	year, month, day := local.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, local.Location())
	end := start.AddDate(0, 0, 1)

	var message string
	err := db.QueryRow(`
		SELECT message
		FROM daily_messages
		WHERE created_at >= ? AND created_at < ?
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`, start, end).Scan(&message)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query today's message: %w", err)
	}
	return message, true, nil
}

// GetPreferences returns the singleton preferences row.
func GetPreferences(db *sql.DB) (*models.UserPreferences, error) {
	var p models.UserPreferences
	var lastLogin sql.NullTime
	err := db.QueryRow(`SELECT id, nickname, last_login FROM user_preferences WHERE id = 1`).
		Scan(&p.ID, &p.Nickname, &lastLogin)
	if err != nil {
		return nil, fmt.Errorf("failed to query user preferences: %w", err)
	}
	if lastLogin.Valid {
		p.LastLogin = lastLogin.Time
	}
	return &p, nil
}

// TouchLastLogin records now as the last visit on the singleton row.
func TouchLastLogin(db *sql.DB, now time.Time) error {
	if _, err := db.Exec(`UPDATE user_preferences SET last_login = ? WHERE id = 1`, now); err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}
