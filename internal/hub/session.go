package hub

import (
	"encoding/json"
	"errors"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"ocst/internal/model"
)

var (
	errUnknownIntent = errors.New("unknown intent event")
	errBadHandshake  = errors.New("first frame must be a valid user-connected event")
	errDuplicateMark = errors.New("call already received")
)

// sendQueueSize bounds how far a session may lag behind the broadcast
// stream before it is dropped.
const sendQueueSize = 64

// Session is one connected client, tagged with the identity and role it
// declared in its user-connected frame. The read pump forwards frames
// to the hub; the write pump drains the send queue.
type Session struct {
	Username string
	Role     model.Role

	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	log  zerolog.Logger
}

// ServeConn performs the user-connected handshake and then pumps the
// connection until it closes. It blocks for the lifetime of the
// session, matching the HTTP handler goroutine that owns the upgrade.
func (h *Hub) ServeConn(conn *websocket.Conn) {
	defer conn.Close()

	p, err := readHandshake(conn)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket handshake failed")
		return
	}

	s := &Session{
		Username: p.Username,
		Role:     p.Role,
		hub:      h,
		conn:     conn,
		send:     make(chan []byte, sendQueueSize),
		log:      h.log.With().Str("username", p.Username).Str("role", string(p.Role)).Logger(),
	}

	select {
	case h.register <- s:
	case <-h.done:
		return
	}
	go s.writePump()
	s.readPump()
}

// readHandshake reads and validates the mandatory first frame.
func readHandshake(conn *websocket.Conn) (model.UserConnectedPayload, error) {
	var f model.Frame
	if err := conn.ReadJSON(&f); err != nil {
		return model.UserConnectedPayload{}, err
	}
	if f.Event != model.EventUserConnected {
		return model.UserConnectedPayload{}, errBadHandshake
	}
	var p model.UserConnectedPayload
	if err := json.Unmarshal(f.Data, &p); err != nil {
		return model.UserConnectedPayload{}, err
	}
	if p.Username == "" || !p.Role.Valid() {
		return model.UserConnectedPayload{}, errBadHandshake
	}
	return p, nil
}

// readPump forwards client frames to the hub until the connection
// drops. Malformed JSON closes the connection; everything else is the
// hub's call.
func (s *Session) readPump() {
	defer func() {
		select {
		case s.hub.unregister <- s:
		case <-s.hub.done:
		}
	}()

	for {
		var f model.Frame
		if err := s.conn.ReadJSON(&f); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Debug().Err(err).Msg("read error")
			}
			return
		}
		select {
		case s.hub.intents <- intent{session: s, frame: f}:
		case <-s.hub.done:
			return
		}
	}
}

// writePump drains the send queue onto the wire. The hub closes the
// queue when the session is unregistered or dropped, which ends the
// loop and, via the deferred Close, the read pump as well.
func (s *Session) writePump() {
	defer s.conn.Close()
	for msg := range s.send {
		if err := s.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

// enqueue hands a marshaled frame to the write pump without blocking.
// false means the queue is full and the session should be dropped.
func (s *Session) enqueue(b []byte) bool {
	select {
	case s.send <- b:
		return true
	default:
		return false
	}
}
