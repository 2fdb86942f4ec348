package entities

import "time"

// Message is a single translated template registered for a locale.
type Message struct {
	ID        uint
	Locale    string
	Key       string
	Template  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
