package model

import "time"

// ChatMessage is one entry in the shared chat log. Immutable once
// created; the log is only ever cleared as a whole.
type ChatMessage struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	DeviceType Role      `json:"deviceType"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
}
