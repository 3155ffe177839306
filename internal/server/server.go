// Package server exposes the extraction pipeline over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/pagesift/pagesift/internal/logger"
	"github.com/pagesift/pagesift/pkg/pagesift"
)

// Server serves the extraction API.
type Server struct {
	pipeline *pagesift.Pagesift
	config   Config
	http     http.Server
}

// New creates a Server. The config is validated before use.
func New(cfg Config, pipeline *pagesift.Pagesift) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Server{
		pipeline: pipeline,
		config:   cfg,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/extract", s.handleExtract)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("GET /version", s.handleVersion)

	s.http = http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return s, nil
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Start listens and serves until Shutdown is called.
func (s *Server) Start() error {
	logger.Info("server listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()
	return s.http.Shutdown(ctx)
}
