package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mongodb"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"mini-news-api/internal/logger"
)

//go:embed migrations/*.json
var migrationFS embed.FS

// RunMigrations applies all pending index migrations and returns version info.
// The migrate instance is not closed: closing it would disconnect the shared client.
func RunMigrations(m *Mongo) (uint, bool, error) {
	driver, err := mongodb.WithInstance(m.Client(), &mongodb.Config{
		DatabaseName: m.DatabaseName(),
	})
	if err != nil {
		return 0, false, fmt.Errorf("failed to create mongodb driver: %w", err)
	}

	source, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return 0, false, fmt.Errorf("failed to create iofs source: %w", err)
	}

	mig, err := migrate.NewWithInstance("iofs", source, "mongodb", driver)
	if err != nil {
		return 0, false, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	err = mig.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, false, fmt.Errorf("failed to run migrations: %w", err)
	}

	version, dirty, err := mig.Version()
	if err != nil {
		return 0, false, fmt.Errorf("failed to get migration version: %w", err)
	}

	return version, dirty, nil
}

// MigrationHook adapts RunMigrations for use with Mongo.OnConnect.
func MigrationHook(ctx context.Context, m *Mongo) error {
	version, dirty, err := RunMigrations(m)
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "Database migrations applied",
		slog.Uint64("version", uint64(version)),
		slog.Bool("dirty", dirty))
	return nil
}
