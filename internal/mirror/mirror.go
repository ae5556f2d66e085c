// Package mirror rebuilds the coordinator's call and chat state on the
// client side from the broadcast stream alone. It never generates ids
// or timestamps and never mutates state on its own, so two mirrors fed
// the same events in the same order always agree.
package mirror

import (
	"encoding/json"
	"fmt"
	"sync"

	"ocst/internal/model"
)

// Mirror is a client-local replica of the call registry and chat log.
// Events must be applied in receipt order.
type Mirror struct {
	mu    sync.Mutex
	calls []model.Call
	msgs  []model.ChatMessage
}

// New returns an empty mirror, ready for the initial snapshot events.
func New() *Mirror {
	return &Mirror{}
}

// ApplyFrame folds one wire frame into the mirror.
func (m *Mirror) ApplyFrame(f model.Frame) error {
	return m.Apply(f.Event, f.Data)
}

// Apply folds one broadcast event into the mirror. Unknown event kinds
// are ignored so older clients survive protocol additions.
func (m *Mirror) Apply(event string, data json.RawMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch event {
	case model.EventInitialCalls:
		var calls []model.Call
		if err := json.Unmarshal(data, &calls); err != nil {
			return fmt.Errorf("decode %s: %w", event, err)
		}
		m.calls = calls

	case model.EventCallCreated:
		var call model.Call
		if err := json.Unmarshal(data, &call); err != nil {
			return fmt.Errorf("decode %s: %w", event, err)
		}
		m.calls = append(m.calls, call)

	case model.EventCallUpdated:
		var call model.Call
		if err := json.Unmarshal(data, &call); err != nil {
			return fmt.Errorf("decode %s: %w", event, err)
		}
		for i := range m.calls {
			if m.calls[i].ID == call.ID {
				m.calls[i] = call
				break
			}
		}

	case model.EventCallsCleared:
		m.calls = nil

	case model.EventInitialMessages:
		var msgs []model.ChatMessage
		if err := json.Unmarshal(data, &msgs); err != nil {
			return fmt.Errorf("decode %s: %w", event, err)
		}
		m.msgs = msgs

	case model.EventNewMessage:
		var msg model.ChatMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return fmt.Errorf("decode %s: %w", event, err)
		}
		m.msgs = append(m.msgs, msg)

	case model.EventChatCleared:
		m.msgs = nil
	}
	return nil
}

// Calls returns the mirrored calls in creation order.
func (m *Mirror) Calls() []model.Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// Messages returns the mirrored chat log in insertion order.
func (m *Mirror) Messages() []model.ChatMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.ChatMessage, len(m.msgs))
	copy(out, m.msgs)
	return out
}
