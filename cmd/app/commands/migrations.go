package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"taskhub/internal/app"
	"taskhub/internal/config"
)

// RunMigrations applies pending migrations for one service's schema. Each
// service owns its database, so the migration directory is selected by service
// name and the configured driver. Returns nil if there is nothing to apply.
func RunMigrations(service string) error {
	cfg := config.Load()

	// Create container just for logger
	container := app.NewContainer(cfg)
	logger := container.Logger()

	switch service {
	case "auth", "user", "task":
	default:
		return fmt.Errorf("unknown service: %s (valid options: auth, user, task)", service)
	}

	driverDir := "postgresql"
	if cfg.DBDriver == "mysql" {
		driverDir = "mysql"
	}
	migrationsPath := fmt.Sprintf("file://migrations/%s/%s", service, driverDir)

	logger.Info("running database migrations",
		slog.String("service", service),
		slog.String("driver", cfg.DBDriver),
	)

	m, err := migrate.New(migrationsPath, cfg.DBConnectionString)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer closeMigrate(m, logger)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("migrations completed successfully")
	return nil
}
