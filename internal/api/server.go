// Package api assembles the Gin router, standard middleware, and the HTTP
// server lifecycle with graceful shutdown.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/HydJing/status-service/internal/config"
	"github.com/HydJing/status-service/internal/logger"
)

// Default HTTP server timeouts.
const (
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 10 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultShutdownTimeout = 30 * time.Second
)

// Server wraps the Gin engine and http.Server with lifecycle management.
type Server struct {
	router *gin.Engine
	server *http.Server
	logger logger.Logger
	cfg    *config.Config
}

// NewServer builds the HTTP server. Standard middleware is applied before
// the routes configured by setupRoutes.
func NewServer(cfg *config.Config, log logger.Logger, setupRoutes func(*gin.Engine)) *Server {
	if cfg.Service.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Recovery first to catch panics from everything after it.
	router.Use(RecoveryMiddleware(log))
	router.Use(RequestIDMiddleware(log))
	router.Use(LoggerMiddleware(log))
	router.Use(CORSMiddleware())

	if setupRoutes != nil {
		setupRoutes(router)
	}

	// Bound to all interfaces; the port alone is configurable.
	addr := fmt.Sprintf(":%d", cfg.Service.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	return &Server{
		router: router,
		server: httpServer,
		logger: log,
		cfg:    cfg,
	}
}

// Router returns the underlying Gin engine for additional configuration.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start starts the HTTP server and blocks until it is shut down or fails.
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server",
		logger.String("address", s.server.Addr),
		logger.String("service", s.cfg.Service.Name),
		logger.String("version", s.cfg.Service.Version),
		logger.String("environment", s.cfg.Service.Environment),
	)

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// StartAsync starts the server in a goroutine and returns an error channel
// that receives any server error.
func (s *Server) StartAsync() <-chan error {
	errCh := make(chan error, 1)

	go func() {
		if err := s.Start(); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	return errCh
}

// Shutdown gracefully drains connections within the shutdown timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server",
		logger.Duration("timeout", defaultShutdownTimeout),
	)

	shutdownCtx, cancel := context.WithTimeout(ctx, defaultShutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.logger.Info("HTTP server stopped gracefully")
	return nil
}

// RunWithGracefulShutdown starts the server and shuts it down on SIGINT,
// SIGTERM, or context cancellation.
func (s *Server) RunWithGracefulShutdown(ctx context.Context) error {
	errCh := s.StartAsync()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		s.logger.Info("Shutdown signal received",
			logger.String("signal", sig.String()),
		)
	case <-ctx.Done():
		s.logger.Info("Context cancelled, shutting down")
	}

	// Fresh context: the original may already be cancelled.
	return s.Shutdown(context.Background())
}

// Run starts the server with graceful shutdown handling.
func (s *Server) Run() error {
	return s.RunWithGracefulShutdown(context.Background())
}
