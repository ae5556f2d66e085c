// Package hub implements the coordination hub: the single serialization
// point through which every mutation of the call registry and chat log
// flows, and the fan-out of the resulting broadcast events to all
// connected sessions.
package hub

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"ocst/internal/metrics"
	"ocst/internal/model"
	"ocst/internal/store"
)

// Hub owns the set of connected sessions. Its run loop applies one
// intent at a time and completes the fan-out of the resulting events
// before taking the next one, so every session observes the same total
// order of state changes.
//
// Trust boundary: the hub does not verify the role a session declares
// in its user-connected frame. A client claiming the dispatch role gets
// dispatch capabilities; the event contract has no server-issued role
// claims. This mirrors the original system and is accepted here.
type Hub struct {
	log      zerolog.Logger
	calls    *store.CallRegistry
	chat     *store.ChatLog
	metrics  *metrics.Metrics
	validate *validator.Validate

	register   chan *Session
	unregister chan *Session
	intents    chan intent

	// done is closed when the run loop exits, releasing any pump
	// goroutine still trying to reach it.
	done chan struct{}

	// Owned exclusively by the run loop.
	sessions map[*Session]bool
}

type intent struct {
	session *Session
	frame   model.Frame
}

// New creates a hub around the given stores. Call Run before serving
// connections.
func New(log zerolog.Logger, calls *store.CallRegistry, chat *store.ChatLog, m *metrics.Metrics) *Hub {
	return &Hub{
		log:        log.With().Str("component", "hub").Logger(),
		calls:      calls,
		chat:       chat,
		metrics:    m,
		validate:   validator.New(),
		register:   make(chan *Session),
		unregister: make(chan *Session),
		intents:    make(chan intent),
		done:       make(chan struct{}),
		sessions:   make(map[*Session]bool),
	}
}

// Run processes registrations, disconnects and intents until ctx is
// cancelled. It must run in its own goroutine.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			for s := range h.sessions {
				h.dropSession(s)
			}
			return

		case s := <-h.register:
			h.addSession(s)

		case s := <-h.unregister:
			if h.sessions[s] {
				h.dropSession(s)
				h.log.Info().Str("username", s.Username).Str("role", string(s.Role)).
					Int("total_sessions", len(h.sessions)).Msg("session disconnected")
			}

		case in := <-h.intents:
			h.handleIntent(in.session, in.frame)
		}
	}
}

// addSession registers a session and sends it the two initial snapshot
// events so its mirror starts from the current authoritative state.
func (h *Hub) addSession(s *Session) {
	h.sessions[s] = true
	h.metrics.ConnectedSessions.Inc()
	h.log.Info().Str("username", s.Username).Str("role", string(s.Role)).
		Int("total_sessions", len(h.sessions)).Msg("session connected")

	h.sendTo(s, model.EventInitialCalls, h.calls.Snapshot())
	h.sendTo(s, model.EventInitialMessages, h.chat.Snapshot())
}

// dropSession removes a session from the broadcast set and closes its
// send queue. It never touches the stores: calls and messages outlive
// their originating session.
func (h *Hub) dropSession(s *Session) {
	delete(h.sessions, s)
	close(s.send)
	h.metrics.ConnectedSessions.Dec()
}

func (h *Hub) handleIntent(s *Session, f model.Frame) {
	var err error
	switch f.Event {
	case model.EventNewCall:
		err = h.handleNewCall(s, f.Data)
	case model.EventMarkCallReceived:
		err = h.handleMarkReceived(s, f.Data)
	case model.EventClearAllCalls:
		h.calls.ClearAll()
		h.broadcast(model.EventCallsCleared, nil)
	case model.EventSendMessage:
		err = h.handleSendMessage(s, f.Data)
	case model.EventClearChat:
		h.chat.Clear()
		h.broadcast(model.EventChatCleared, nil)
	case model.EventSendNotification:
		h.broadcastExcept(s, model.EventNotificationSent, model.NotificationPayload{Sender: s.Username})
	default:
		err = errUnknownIntent
	}

	if errors.Is(err, errDuplicateMark) {
		h.metrics.Intents.WithLabelValues(f.Event, metrics.OutcomeNoop).Inc()
		return
	}
	if err != nil {
		// Rejected intents are dropped without teardown: the session
		// stays connected and nothing is broadcast.
		h.metrics.Intents.WithLabelValues(f.Event, metrics.OutcomeRejected).Inc()
		h.log.Warn().Err(err).Str("event", f.Event).Str("username", s.Username).
			Msg("intent rejected")
		return
	}
	h.metrics.Intents.WithLabelValues(f.Event, metrics.OutcomeApplied).Inc()
}

func (h *Hub) handleNewCall(s *Session, data json.RawMessage) error {
	var p model.NewCallPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if err := h.validate.Struct(p); err != nil {
		return err
	}
	call, err := h.calls.Create(s.Username, p.Title, p.Details, p.Location, p.Priority)
	if err != nil {
		return err
	}
	h.broadcast(model.EventCallCreated, call)
	return nil
}

func (h *Hub) handleMarkReceived(s *Session, data json.RawMessage) error {
	var id string
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	call, updated, err := h.calls.MarkReceived(id, s.Username)
	if err != nil {
		return err
	}
	if !updated {
		// Duplicate mark, e.g. a double click. Benign: the first
		// receivedBy stands and nothing new is broadcast.
		h.log.Debug().Str("call_id", id).Str("username", s.Username).
			Msg("call already received, ignoring duplicate mark")
		return errDuplicateMark
	}
	h.broadcast(model.EventCallUpdated, call)
	return nil
}

func (h *Hub) handleSendMessage(s *Session, data json.RawMessage) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	msg, err := h.chat.Append(s.Username, s.Role, text)
	if err != nil {
		return err
	}
	h.broadcast(model.EventNewMessage, msg)
	return nil
}

// broadcast fans an event out to every connected session.
func (h *Hub) broadcast(event string, data any) {
	h.broadcastExcept(nil, event, data)
}

// broadcastExcept fans an event out to every session but skip. The
// frame is marshaled once; a session whose queue is full is dropped so
// a stuck client can never stall the loop.
func (h *Hub) broadcastExcept(skip *Session, event string, data any) {
	b, err := marshalFrame(event, data)
	if err != nil {
		h.log.Error().Err(err).Str("event", event).Msg("marshal broadcast frame")
		return
	}
	h.metrics.Broadcasts.WithLabelValues(event).Inc()
	for s := range h.sessions {
		if s == skip {
			continue
		}
		if !s.enqueue(b) {
			h.dropSession(s)
			h.log.Warn().Str("username", s.Username).Msg("dropping slow session")
		}
	}
}

// sendTo delivers an event to a single session.
func (h *Hub) sendTo(s *Session, event string, data any) {
	b, err := marshalFrame(event, data)
	if err != nil {
		h.log.Error().Err(err).Str("event", event).Msg("marshal frame")
		return
	}
	if !s.enqueue(b) {
		h.dropSession(s)
		h.log.Warn().Str("username", s.Username).Msg("dropping slow session")
	}
}

func marshalFrame(event string, data any) ([]byte, error) {
	// No omitempty here: an empty snapshot must still arrive as [].
	f := struct {
		Event string `json:"event"`
		Data  any    `json:"data"`
	}{Event: event, Data: data}
	return json.Marshal(f)
}
