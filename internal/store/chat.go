package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"ocst/internal/model"
)

// ChatLog is the append-only shared chat history. Like the call
// registry it hands out copies, never its internal slice.
type ChatLog struct {
	mu   sync.Mutex
	msgs []model.ChatMessage

	now   func() time.Time
	newID func() string
}

// NewChatLog creates an empty log.
func NewChatLog() *ChatLog {
	return &ChatLog{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Append adds a message to the end of the log, assigning its id and
// timestamp. Whitespace-only text is rejected with ErrEmptyMessage.
func (l *ChatLog) Append(username string, deviceType model.Role, text string) (model.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.ChatMessage{}, ErrEmptyMessage
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	msg := model.ChatMessage{
		ID:         l.newID(),
		Username:   username,
		DeviceType: deviceType,
		Message:    text,
		Timestamp:  l.now(),
	}
	l.msgs = append(l.msgs, msg)
	return msg, nil
}

// Clear empties the log unconditionally.
func (l *ChatLog) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.msgs = nil
}

// Snapshot returns the full log in insertion order.
func (l *ChatLog) Snapshot() []model.ChatMessage {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.ChatMessage, len(l.msgs))
	copy(out, l.msgs)
	return out
}
