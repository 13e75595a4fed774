// Package router wires the HTTP surface: the voice webhook, the bookings
// read side, health, and metrics.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/romanlp3005/agent-ia/internal/bookings"
	httpmiddleware "github.com/romanlp3005/agent-ia/internal/http/middleware"
	"github.com/romanlp3005/agent-ia/internal/voice"
	"github.com/romanlp3005/agent-ia/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger          *logging.Logger
	VoiceHandler    *voice.Handler
	BookingsHandler *bookings.Handler
	MetricsHandler  http.Handler
}

// New creates a Chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if cfg.VoiceHandler != nil {
		r.Post("/voice/{tenantID}", cfg.VoiceHandler.HandleTurn)
	}
	if cfg.BookingsHandler != nil {
		r.Get("/tenants/{tenantID}/bookings", cfg.BookingsHandler.List)
	}
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	return r
}
