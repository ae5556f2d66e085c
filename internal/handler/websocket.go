package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
)

// createUpgrader creates a WebSocket upgrader with the given allowed origins
func createUpgrader(allowedOrigins []string) websocket.Upgrader {
	allowedMap := make(map[string]bool)
	for _, origin := range allowedOrigins {
		allowedMap[origin] = true
	}

	return websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return allowedMap[origin]
		},
	}
}

// HandleWebSocket handles GET /ws. After the upgrade the connection is
// handed to the hub, which performs the user-connected handshake and
// pumps it for the lifetime of the session.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	upgrader := createUpgrader(h.Config.AllowedOrigins)
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Log.Warn().Err(err).Str("remote", r.RemoteAddr).Msg("websocket upgrade error")
		return
	}
	h.Hub.ServeConn(conn)
}
