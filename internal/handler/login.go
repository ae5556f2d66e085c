package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"ocst/internal/auth"
	"ocst/internal/model"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool        `json:"success"`
	User    *model.User `json:"user,omitempty"`
	Message string      `json:"message,omitempty"`
}

// HandleLogin handles POST /api/login. Login failures are reported only
// to the caller; nothing reaches the hub.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	// Limit request body size to 1MB
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Log.Warn().Err(err).Str("remote", r.RemoteAddr).Msg("login: bad request body")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(loginResponse{Success: false, Message: "invalid request body"})
		return
	}

	user, err := h.Auth.Login(req.Username, req.Password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			h.Log.Error().Err(err).Msg("login: authenticator error")
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(loginResponse{Success: false, Message: "invalid username or password"})
		return
	}

	h.Log.Info().Str("username", user.Username).Str("remote", r.RemoteAddr).Msg("login ok")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(loginResponse{Success: true, User: &user})
}

// HandleHealthz handles GET /healthz.
func (h *Handler) HandleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
