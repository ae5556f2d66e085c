package model

import "encoding/json"

// Frame is the JSON envelope for every event on the WebSocket, in both
// directions: {"event": "...", "data": ...}.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Server -> client events.
const (
	EventInitialCalls     = "initial-calls"
	EventCallCreated      = "call-created"
	EventCallUpdated      = "call-updated"
	EventCallsCleared     = "calls-cleared"
	EventInitialMessages  = "initial-messages"
	EventNewMessage       = "new-message"
	EventChatCleared      = "chat-cleared"
	EventNotificationSent = "notification-sent"
)

// Client -> server events. UserConnected must be the first frame a
// client sends after the upgrade.
const (
	EventUserConnected    = "user-connected"
	EventNewCall          = "new-call"
	EventMarkCallReceived = "mark-call-received"
	EventClearAllCalls    = "clear-all-calls"
	EventSendMessage      = "send-message"
	EventClearChat        = "clear-chat"
	EventSendNotification = "send-notification"
)

// UserConnectedPayload identifies a freshly connected session.
type UserConnectedPayload struct {
	Username string `json:"username" validate:"required"`
	Role     Role   `json:"role" validate:"required,oneof=mobile dispatch"`
}

// NewCallPayload is the client payload for a new-call intent. Priority
// may be omitted and defaults to not-urgent.
type NewCallPayload struct {
	Title    string   `json:"title" validate:"required"`
	Details  string   `json:"details" validate:"required"`
	Location string   `json:"location" validate:"required"`
	Priority Priority `json:"priority"`
}

// NotificationPayload is broadcast to every session except the sender.
// The original system defines no content beyond the sender identity, so
// none is carried here.
type NotificationPayload struct {
	Sender string `json:"sender"`
}
