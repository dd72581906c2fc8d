package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// Migration commands accepted by Migrate.
const (
	MigrateUp      = "up"
	MigrateDown    = "down"
	MigrateStatus  = "status"
	MigrateVersion = "version"
)

// MigrationsFS returns the embedded migration files rooted at their directory.
func MigrationsFS() fs.FS {
	sub, err := fs.Sub(embeddedMigrations, "migrations")
	if err != nil {
		// The directory is embedded at build time.
		panic(err)
	}
	return sub
}

// Migrate runs a goose command against the database behind pool.
func Migrate(ctx context.Context, pool *pgxpool.Pool, command string, logger *slog.Logger) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, MigrationsFS())
	if err != nil {
		return fmt.Errorf("create migration provider: %w", err)
	}

	logger = logger.With("component", "migrations")

	switch command {
	case MigrateUp:
		results, err := provider.Up(ctx)
		if err != nil {
			return fmt.Errorf("migrate up: %w", err)
		}
		for _, r := range results {
			logger.InfoContext(ctx, "applied migration",
				"version", r.Source.Version,
				"duration", r.Duration)
		}
		if len(results) == 0 {
			logger.InfoContext(ctx, "no migrations to apply")
		}
	case MigrateDown:
		r, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}
		logger.InfoContext(ctx, "rolled back migration", "version", r.Source.Version)
	case MigrateStatus:
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("migration status: %w", err)
		}
		for _, s := range statuses {
			logger.InfoContext(ctx, "migration status",
				"version", s.Source.Version,
				"path", s.Source.Path,
				"state", string(s.State),
				"applied_at", s.AppliedAt)
		}
	case MigrateVersion:
		v, err := provider.GetDBVersion(ctx)
		if err != nil {
			return fmt.Errorf("migration version: %w", err)
		}
		logger.InfoContext(ctx, "current migration version", "version", v)
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}
	return nil
}
