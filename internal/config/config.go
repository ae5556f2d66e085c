package config

import (
	"os"
	"strings"
)

// Config holds application configuration.
type Config struct {
	// Server settings
	ServerPort string
	Env        string
	LogLevel   string

	// CORS settings
	AllowedOrigins []string

	// Login credentials, comma-separated "user:pass" pairs. The
	// default only exists so a development checkout works out of the
	// box; deployments must set AUTH_USERS.
	AuthUsers string
}

// Load loads configuration from environment variables.
func Load() Config {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "3001"
	}

	env := os.Getenv("ENV")
	if env == "" {
		env = "development"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000,http://127.0.0.1:3000"
	}

	authUsers := os.Getenv("AUTH_USERS")
	if authUsers == "" {
		authUsers = "central:dispatch01,unit12:patrol12"
	}

	cfg := Config{
		ServerPort:     serverPort,
		Env:            env,
		LogLevel:       logLevel,
		AllowedOrigins: strings.Split(allowedOrigins, ","),
		AuthUsers:      authUsers,
	}

	for i := range cfg.AllowedOrigins {
		cfg.AllowedOrigins[i] = strings.TrimSpace(cfg.AllowedOrigins[i])
	}

	return cfg
}
