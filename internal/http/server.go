// Package http provides the shared HTTP server shell used by every service
// in the constellation: a Gin engine with request-id, logging, recovery and
// CORS middleware, health/readiness endpoints, and graceful shutdown.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Server represents the HTTP server for one service.
type Server struct {
	server *http.Server
	engine *gin.Engine
	db     *sql.DB
	logger *slog.Logger
}

// Option configures optional server behavior.
type Option func(*Server)

// WithCORS enables CORS with the given comma-separated origins.
func WithCORS(enabled bool, allowOrigins string) Option {
	return func(s *Server) {
		if middleware := createCORSMiddleware(enabled, allowOrigins, s.logger); middleware != nil {
			s.engine.Use(middleware)
		}
	}
}

// WithMiddleware installs an extra global middleware (e.g. metrics).
func WithMiddleware(middleware gin.HandlerFunc) Option {
	return func(s *Server) {
		if middleware != nil {
			s.engine.Use(middleware)
		}
	}
}

// NewServer creates a new HTTP server. The db handle is used by the readiness
// endpoint and may be nil for services without their own store (the gateway).
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger, opts ...Option) *Server {
	engine := gin.New()

	s := &Server{
		engine: engine,
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			Handler:      engine,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	engine.Use(gin.Recovery())
	engine.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	engine.Use(CustomLoggerMiddleware(logger))

	for _, opt := range opts {
		opt(s)
	}

	engine.GET("/health", s.healthHandler)
	engine.GET("/ready", s.readinessHandler)

	return s
}

// Engine returns the underlying Gin engine for route registration.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the service can serve traffic. Services
// with a store are ready only when the database responds to a ping.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": "ok"},
	})
}
