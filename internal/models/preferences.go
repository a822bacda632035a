package models

import "time"

// UserPreferences is a singleton row (id 1). The app is single-user; the row
// holds the display nickname and the time of the last visit.
type UserPreferences struct {
	ID        int64     `json:"id"`
	Nickname  string    `json:"nickname"`
	LastLogin time.Time `json:"last_login"`
}
