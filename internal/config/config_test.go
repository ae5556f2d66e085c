package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "ENV", "LOG_LEVEL", "ALLOWED_ORIGINS", "AUTH_USERS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3001", cfg.ServerPort)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.AllowedOrigins)
	assert.NotEmpty(t, cfg.AuthUsers)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ALLOWED_ORIGINS", " https://dispatch.example.com , https://mobile.example.com")
	t.Setenv("AUTH_USERS", "ops:secret")

	cfg := Load()

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"https://dispatch.example.com", "https://mobile.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, "ops:secret", cfg.AuthUsers)
}
