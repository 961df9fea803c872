package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"taskhub/internal/app"
	"taskhub/internal/config"
	"taskhub/internal/http"
)

// serverAccessor picks one service's HTTP server out of the container. Each
// Run*Server entry point passes the accessor for the service it starts.
type serverAccessor func(*app.Container) (*http.Server, error)

// RunAuthServer starts the authentication service.
func RunAuthServer(ctx context.Context) error {
	return runServer(ctx, "auth", (*app.Container).AuthHTTPServer)
}

// RunUserServer starts the user profile service.
func RunUserServer(ctx context.Context) error {
	return runServer(ctx, "user", (*app.Container).ProfileHTTPServer)
}

// RunTaskServer starts the task service.
func RunTaskServer(ctx context.Context) error {
	return runServer(ctx, "task", (*app.Container).TaskHTTPServer)
}

// RunGatewayServer starts the API gateway.
func RunGatewayServer(ctx context.Context) error {
	return runServer(ctx, "gateway", (*app.Container).GatewayHTTPServer)
}

// runServer starts one service's HTTP server with graceful shutdown support.
// Loads configuration, initializes the DI container, and blocks until a
// SIGINT/SIGTERM arrives or a server fails.
func runServer(ctx context.Context, serviceName string, accessor serverAccessor) error {
	cfg := config.Load()

	gin.SetMode(cfg.GetGinMode())

	container := app.NewContainer(cfg)

	logger := container.Logger()
	logger.Info("starting service", slog.String("service", serviceName))

	defer closeContainer(container, logger)

	server, err := accessor(container)
	if err != nil {
		return fmt.Errorf("failed to initialize %s server: %w", serviceName, err)
	}

	var metricsServer *http.MetricsServer
	if cfg.MetricsEnabled {
		metricsServer, err = container.MetricsServer()
		if err != nil {
			return fmt.Errorf("failed to initialize metrics server: %w", err)
		}
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	serverErr := make(chan error, 2)
	go func() {
		if err := server.Start(ctx); err != nil {
			serverErr <- fmt.Errorf("api server error: %w", err)
		}
	}()

	if metricsServer != nil {
		go func() {
			if err := metricsServer.Start(ctx); err != nil {
				serverErr <- fmt.Errorf("metrics server error: %w", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		return shutdownServers(server, metricsServer, cfg, nil)
	case err := <-serverErr:
		logger.Error("server error, initiating shutdown", slog.Any("error", err))
		return shutdownServers(server, metricsServer, cfg, err)
	}
}

// shutdownServers gracefully stops the API and metrics servers, joining any
// shutdown errors with the error that triggered the shutdown.
func shutdownServers(
	server *http.Server,
	metricsServer *http.MetricsServer,
	cfg *config.Config,
	cause error,
) error {
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.DBConnMaxLifetime)
	defer shutdownCancel()

	var shutdownErrors []error
	if cause != nil {
		shutdownErrors = append(shutdownErrors, cause)
	}

	if server != nil {
		if err := server.Shutdown(shutdownCtx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("api server shutdown: %w", err))
		}
	}

	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return errors.Join(shutdownErrors...)
	}

	return nil
}
