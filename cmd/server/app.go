package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jatin020403/quiz-api/internal/config"
	"github.com/Jatin020403/quiz-api/internal/generation"
	"github.com/Jatin020403/quiz-api/internal/platform/postgres"
	"github.com/Jatin020403/quiz-api/internal/service"
	"github.com/Jatin020403/quiz-api/internal/service/auth"
	"github.com/Jatin020403/quiz-api/internal/store"
)

// application holds the wired dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool

	ownerStore store.OwnerStore
	jwtService auth.JWTService

	contentService service.ContentService
	ownerService   service.OwnerService
}

// newApplication wires the Postgres store and the services on top of it.
func newApplication(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	model generation.ModelClient,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		pool:   pool,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}

	app.ownerStore = postgres.NewPostgresOwnerStore(pool, logger)

	if err := app.wireServices(model, app.ownerStore); err != nil {
		return nil, err
	}

	logger.Info("application initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes,
		"bcrypt_cost", cfg.Auth.BCryptCost)
	return app, nil
}

func (app *application) wireServices(model generation.ModelClient, owners store.OwnerStore) error {
	var err error
	app.ownerStore = owners

	app.contentService, err = service.NewContentService(model, owners, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create content service: %w", err)
	}

	app.ownerService, err = service.NewOwnerService(
		owners,
		auth.NewBcryptHasher(app.config.Auth.BCryptCost),
		app.jwtService,
		app.logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create owner service: %w", err)
	}
	return nil
}

// Run serves HTTP until ctx is cancelled.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
