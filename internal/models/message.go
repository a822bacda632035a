package models

import "time"

// DailyMessage is a persisted short supportive text tied to the date it was
// generated. The store allows multiple messages per day; the "today" view
// picks the most recent one.
type DailyMessage struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
