/*
Package server exposes the personalization engine over HTTP.

The serve mode backs a browser frontend: lookups, keystroke-driven
suggestions, history, interests, the pending feedback prompt, and the
forget-preferences control are all available under /api. The engine itself
lives in internal/app; handlers stay thin.
*/
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/skovgaard/platepilot/internal/app"
)

// Service is the HTTP service wrapping the engine.
type Service struct {
	app    *app.App
	router chi.Router
	logger zerolog.Logger
	server *http.Server
}

// NewService creates the HTTP service.
func NewService(application *app.App, addr string, logger zerolog.Logger) *Service {
	s := &Service{
		app:    application,
		router: chi.NewRouter(),
		logger: logger.With().Str("component", "server").Logger(),
	}
	s.setupRoutes()
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// setupRoutes registers middleware and the API routes.
func (s *Service) setupRoutes() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(s.requestLogger)

	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/lookup", s.handleLookup)
		r.Get("/suggest", s.handleSuggest)
		r.Post("/suggest/activate", s.handleActivate)
		r.Get("/history", s.handleHistory)
		r.Get("/interests", s.handleInterests)
		r.Get("/last-search", s.handleLastSearch)
		r.Get("/feedback/pending", s.handlePendingFeedback)
		r.Post("/feedback", s.handleFeedback)
		r.Post("/feedback/dismiss", s.handleDismissFeedback)
		r.Get("/search", s.handleSearch)
		r.Post("/forget", s.handleForget)
	})
}

// requestLogger logs one line per request.
func (s *Service) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Service) Run(ctx context.Context) error {
	// Re-display a prompt that was pending when the previous process ended.
	s.app.Feedback.Resume()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.server.Addr).Msg("listening")
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}

// Router exposes the router for tests.
func (s *Service) Router() http.Handler {
	return s.router
}
