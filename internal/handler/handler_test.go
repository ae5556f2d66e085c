package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ocst/internal/auth"
	"ocst/internal/config"
	"ocst/internal/geo"
	"ocst/internal/hub"
	"ocst/internal/metrics"
	"ocst/internal/store"
)

const testOrigin = "http://localhost:3000"

// newTestHandler wires a full coordinator with its hub loop running.
func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	cfg := config.Config{
		Env:            "test",
		AllowedOrigins: []string{testOrigin},
	}
	log := zerolog.Nop()
	m := metrics.New()

	coordinator := hub.New(log, store.NewCallRegistry(), store.NewChatLog(), m)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go coordinator.Run(ctx)

	a := auth.NewStatic(map[string]string{"central": "dispatch01", "unit12": "patrol12"})
	return New(cfg, log, coordinator, a, geo.Default(), m)
}

func TestHandleLogin_Success(t *testing.T) {
	h := newTestHandler(t)
	router := h.SetupRouter()

	body, _ := json.Marshal(map[string]string{"username": "central", "password": "dispatch01"})
	req := httptest.NewRequest("POST", "/api/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp loginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.User)
	assert.Equal(t, "central", resp.User.Username)
	assert.Empty(t, resp.Message)
}

func TestHandleLogin_InvalidCredentials(t *testing.T) {
	h := newTestHandler(t)
	router := h.SetupRouter()

	body, _ := json.Marshal(map[string]string{"username": "central", "password": "wrong"})
	req := httptest.NewRequest("POST", "/api/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp loginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Nil(t, resp.User)
	assert.Equal(t, "invalid username or password", resp.Message)
}

func TestHandleLogin_BadBody(t *testing.T) {
	h := newTestHandler(t)
	router := h.SetupRouter()

	req := httptest.NewRequest("POST", "/api/login", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleResolveLocation(t *testing.T) {
	h := newTestHandler(t)
	router := h.SetupRouter()

	req := httptest.NewRequest("GET", "/api/locations/resolve?text="+url.QueryEscape("123 Vinewood Blvd Apt 4"), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var coords geo.Coordinates
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &coords))
	assert.Equal(t, geo.Coordinates{Lat: 34.1015, Lng: -118.3261}, coords)
}

func TestHandleResolveLocation_NotFound(t *testing.T) {
	h := newTestHandler(t)
	router := h.SetupRouter()

	req := httptest.NewRequest("GET", "/api/locations/resolve?text="+url.QueryEscape("Nowhere St"), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "location not found", resp["error"])
}

func TestHandleResolveLocation_MissingText(t *testing.T) {
	h := newTestHandler(t)
	router := h.SetupRouter()

	req := httptest.NewRequest("GET", "/api/locations/resolve", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleHealthz(t *testing.T) {
	h := newTestHandler(t)
	router := h.SetupRouter()

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestHandler(t)
	router := h.SetupRouter()

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ocst_hub_connected_sessions")
}
