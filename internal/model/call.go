package model

import "time"

// Priority classifies how urgent a call is. The wire values are kept
// verbatim from the original OCST clients, so they must not be renamed.
type Priority string

const (
	PriorityNotUrgent Priority = "Acil değil"
	PriorityHigh      Priority = "Öncelikli"
	PriorityEmergency Priority = "Acil"
)

// Valid reports whether p is one of the three known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityNotUrgent, PriorityHigh, PriorityEmergency:
		return true
	}
	return false
}

// Status is the resolution state of a call. A call only ever moves
// from pending to received, never back.
type Status string

const (
	StatusPending  Status = "pending"
	StatusReceived Status = "received"
)

// Call is a dispatch-worthy incident record. ID and Timestamp are
// assigned server-side so every client mirror converges on the same
// values.
type Call struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Details    string    `json:"details"`
	Location   string    `json:"location"`
	Priority   Priority  `json:"priority"`
	Status     Status    `json:"status"`
	Caller     string    `json:"caller"`
	ReceivedBy string    `json:"receivedBy,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
