// Package server assembles the gin engine and runs it behind net/http with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/maxviazov/board-service/internal/config"
	"github.com/maxviazov/board-service/internal/handler"
	"github.com/maxviazov/board-service/internal/route"
	"github.com/maxviazov/board-service/internal/service"
)

// NewEngine builds the router with request id, recovery and access logging in front of every route.
func NewEngine(env string, logger zerolog.Logger, pinger handler.Pinger, board service.BoardService, routes *route.Table) *gin.Engine {
	if env == "prod" || env == "staging" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(handler.RequestID(), handler.Recovery(logger), handler.AccessLog(logger))
	handler.Register(r, pinger, board, routes)
	return r
}

// WithCORS lets the demo site call the API from the given origins. No origins disables CORS headers.
func WithCORS(h http.Handler, origins []string) http.Handler {
	if len(origins) == 0 {
		return h
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", handler.RequestIDHeader},
		ExposedHeaders: []string{handler.RequestIDHeader},
		MaxAge:         600,
	}).Handler(h)
}

// Server is the HTTP listener plus its shutdown budget.
type Server struct {
	http            *http.Server
	shutdownTimeout time.Duration
	log             zerolog.Logger
}

func New(cfg config.AppConfig, h http.Handler, logger zerolog.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           WithCORS(h, cfg.CORSOrigins),
			ReadHeaderTimeout: 5 * time.Second,
		},
		shutdownTimeout: time.Duration(cfg.ShutdownTimeout) * time.Second,
		log:             logger.With().Str("module", "server").Logger(),
	}
}

// Run serves until ctx is done, then drains in-flight requests within the shutdown budget.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.http.Addr).Msg("http server listening")
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info().Dur("timeout", s.shutdownTimeout).Msg("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
