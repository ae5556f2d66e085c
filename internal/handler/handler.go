package handler

import (
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"ocst/internal/auth"
	"ocst/internal/config"
	"ocst/internal/geo"
	"ocst/internal/hub"
	"ocst/internal/metrics"
)

// Handler holds application dependencies.
type Handler struct {
	Config    config.Config
	Log       zerolog.Logger
	Hub       *hub.Hub
	Auth      auth.Authenticator
	Gazetteer geo.Gazetteer
	Metrics   *metrics.Metrics
}

// New creates a new Handler with the given dependencies.
func New(cfg config.Config, log zerolog.Logger, h *hub.Hub, a auth.Authenticator, g geo.Gazetteer, m *metrics.Metrics) *Handler {
	return &Handler{
		Config:    cfg,
		Log:       log.With().Str("component", "http").Logger(),
		Hub:       h,
		Auth:      a,
		Gazetteer: g,
		Metrics:   m,
	}
}

// SetupRouter configures and returns the HTTP router.
func (h *Handler) SetupRouter() *mux.Router {
	r := mux.NewRouter()

	// REST API
	r.HandleFunc("/api/login", h.HandleLogin).Methods("POST")
	r.HandleFunc("/api/locations/resolve", h.HandleResolveLocation).Methods("GET")
	r.HandleFunc("/healthz", h.HandleHealthz).Methods("GET")
	r.Handle("/metrics", h.Metrics.Handler()).Methods("GET")

	// WebSocket
	r.HandleFunc("/ws", h.HandleWebSocket).Methods("GET")

	return r
}
