// Package app provides the dependency injection container for assembling
// service components. One process runs one service, so the container carries
// a single HTTP server; the per-service wiring lives in di_auth.go,
// di_profile.go, di_task.go, and di_gateway.go.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"

	authHTTP "taskhub/internal/auth/http"
	authService "taskhub/internal/auth/service"
	authUsecase "taskhub/internal/auth/usecase"
	"taskhub/internal/config"
	"taskhub/internal/database"
	"taskhub/internal/gateway"
	"taskhub/internal/http"
	"taskhub/internal/identity"
	"taskhub/internal/metrics"
	profileHTTP "taskhub/internal/profile/http"
	profileUsecase "taskhub/internal/profile/usecase"
	taskHTTP "taskhub/internal/task/http"
	taskUsecase "taskhub/internal/task/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics
	identityClient  identity.Client
	httpServer      *http.Server
	metricsServer   *http.MetricsServer

	// Auth service
	passwordService authService.PasswordService
	tokenCodec      authService.TokenCodec
	userRepo        authUsecase.UserRepository
	authUseCase     authUsecase.UseCase
	authHandler     *authHTTP.AuthHandler

	// Profile service
	profileRepo    profileUsecase.ProfileRepository
	profileUseCase profileUsecase.UseCase
	profileHandler *profileHTTP.ProfileHandler

	// Task service
	taskRepo    taskUsecase.TaskRepository
	taskUseCase taskUsecase.UseCase
	taskHandler *taskHTTP.TaskHandler

	// Gateway
	gatewayProxy *gateway.Proxy

	// Initialization flags and mutex for thread-safety
	mu                  sync.Mutex
	loggerInit          sync.Once
	dbInit              sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	identityClientInit  sync.Once
	metricsServerInit   sync.Once
	passwordServiceInit sync.Once
	tokenCodecInit      sync.Once
	userRepoInit        sync.Once
	authUseCaseInit     sync.Once
	authHandlerInit     sync.Once
	profileRepoInit     sync.Once
	profileUseCaseInit  sync.Once
	profileHandlerInit  sync.Once
	taskRepoInit        sync.Once
	taskUseCaseInit     sync.Once
	taskHandlerInit     sync.Once
	gatewayProxyInit    sync.Once
	httpServerInit      sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
// It creates and configures the database connection on first access.
func (c *Container) DB() (*sql.DB, error) {
	c.dbInit.Do(func() {
		db, err := c.initDB()
		if err != nil {
			c.initErrors["db"] = err
			return
		}
		c.db = db
	})
	if storedErr, exists := c.initErrors["db"]; exists {
		return nil, storedErr
	}
	return c.db, nil
}

// MetricsProvider returns the OpenTelemetry/Prometheus metrics provider.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsProviderInit.Do(func() {
		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metricsProvider"] = err
			return
		}
		c.metricsProvider = provider
	})
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	c.businessMetricsInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["businessMetrics"] = err
			return
		}
		bm, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["businessMetrics"] = err
			return
		}
		c.businessMetrics = bm
	})
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// IdentityClient returns the client used to validate bearer tokens against
// the authentication service.
func (c *Container) IdentityClient() identity.Client {
	c.identityClientInit.Do(func() {
		c.identityClient = identity.NewHTTPClient(
			c.config.AuthServiceURL,
			c.config.AuthClientTimeout,
			c.Logger(),
		)
	})
	return c.identityClient
}

// MetricsServer returns the HTTP server that exposes /metrics.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["metricsServer"] = err
			return
		}
		c.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
	})
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	db, err := database.Connect(context.Background(), database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// serverOptions assembles the option list shared by every service's HTTP
// server: CORS when enabled, HTTP metrics when enabled.
func (c *Container) serverOptions() ([]http.Option, error) {
	opts := []http.Option{
		http.WithCORS(c.config.CORSEnabled, c.config.CORSAllowOrigins),
	}

	if c.config.MetricsEnabled {
		provider, err := c.MetricsProvider()
		if err != nil {
			return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
		}
		opts = append(opts, http.WithMiddleware(
			metrics.HTTPMetricsMiddleware(provider.MeterProvider(), c.config.MetricsNamespace),
		))
	}

	return opts, nil
}
