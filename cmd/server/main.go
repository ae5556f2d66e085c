package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"ocst/internal/auth"
	"ocst/internal/config"
	"ocst/internal/geo"
	"ocst/internal/handler"
	"ocst/internal/hub"
	"ocst/internal/logging"
	"ocst/internal/metrics"
	"ocst/internal/store"
)

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	cfg := config.Load()
	log := logging.New(cfg.Env, cfg.LogLevel)

	// Authoritative state
	calls := store.NewCallRegistry()
	chat := store.NewChatLog()
	m := metrics.New()

	// Coordination hub
	coordinator := hub.New(log, calls, chat, m)
	go coordinator.Run(context.Background())

	h := handler.New(cfg, log, coordinator, auth.NewStatic(auth.ParseUsers(cfg.AuthUsers)), geo.Default(), m)
	router := h.SetupRouter()

	// CORS for the browser clients
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{"Content-Length"},
		MaxAge:           300,
		AllowCredentials: true,
	})
	httpHandler := c.Handler(router)

	fmt.Println("========================================")
	fmt.Println("  OCST Dispatch Coordinator")
	fmt.Println("========================================")
	fmt.Printf("  Environment: %s\n", cfg.Env)
	fmt.Printf("  Server: http://localhost:%s\n", cfg.ServerPort)
	fmt.Printf("  WebSocket: ws://localhost:%s/ws\n", cfg.ServerPort)
	fmt.Printf("  Allowed Origins: %v\n", cfg.AllowedOrigins)
	fmt.Println("========================================")

	log.Info().Str("port", cfg.ServerPort).Msg("server started")
	if err := http.ListenAndServe(":"+cfg.ServerPort, httpHandler); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
