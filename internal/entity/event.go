package entity

import "time"

const (
	EventStarted  = "started"
	EventMove     = "move"
	EventFinished = "finished"
)

// Event is a single entry of the outbound game feed.
type Event struct {
	Kind     string    `json:"kind"`
	Round    int       `json:"round"`
	Position *Position `json:"position,omitempty"`
	Mark     Mark      `json:"mark,omitempty"`
	Outcome  Outcome   `json:"outcome,omitempty"`
	Moves    int       `json:"moves"`
	At       time.Time `json:"at"`
}
