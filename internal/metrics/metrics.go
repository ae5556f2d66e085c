package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Intent outcomes used as label values.
const (
	OutcomeApplied  = "applied"
	OutcomeRejected = "rejected"
	OutcomeNoop     = "noop"
)

// Metrics holds the collectors the hub updates. Each instance owns its
// registry so tests never collide on global registration.
type Metrics struct {
	ConnectedSessions prometheus.Gauge
	Intents           *prometheus.CounterVec
	Broadcasts        *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		ConnectedSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ocst_hub_connected_sessions",
			Help: "Number of currently connected sessions",
		}),
		Intents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ocst_hub_intents_total",
			Help: "Client intents processed, by event kind and outcome",
		}, []string{"event", "outcome"}),
		Broadcasts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ocst_hub_broadcast_events_total",
			Help: "Broadcast events emitted, by event kind",
		}, []string{"event"}),
		registry: prometheus.NewRegistry(),
	}
	m.registry.MustRegister(m.ConnectedSessions, m.Intents, m.Broadcasts)
	return m
}

// Handler serves the /metrics endpoint for this instance's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
