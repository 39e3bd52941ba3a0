// Package api wires the HTTP surface: the intake endpoint, the tracking
// beacon routes, and the middleware stack.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/Vishalchandrakumar07/dummy-Mailer/internal/config"
	"github.com/Vishalchandrakumar07/dummy-Mailer/internal/tracking"
)

// Server is the HTTP server for the welcome-notification service.
type Server struct {
	router *chi.Mux
	server *http.Server
}

// NewServer builds the router. The signup form is served from a separate
// origin, so CORS is open to the configured origins (or any, when none are
// configured — the intake endpoint is deliberately unauthenticated).
func NewServer(cfg config.ServerConfig, dispatcher Dispatcher, track *tracking.Handler) *Server {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	h := &Handlers{dispatcher: dispatcher}
	r.Post("/api/send-welcome", h.HandleSendWelcome)
	r.Get("/api/track-open", track.HandleOpen)
	r.Get("/health", track.HandleHealth)

	return &Server{router: r}
}

// ListenAndServe starts the HTTP server on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		// Dispatch holds the request open through the SMTP send.
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully drains the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Handler returns the HTTP handler for testing.
func (s *Server) Handler() http.Handler {
	return s.router
}
