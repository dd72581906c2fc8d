// Package main runs the quiz API server: it loads configuration, connects
// to Postgres, applies migrations and serves the generation endpoints.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Jatin020403/quiz-api/internal/config"
	"github.com/Jatin020403/quiz-api/internal/platform/gemini"
	"github.com/Jatin020403/quiz-api/internal/platform/logger"
	"github.com/Jatin020403/quiz-api/internal/platform/postgres"
	"github.com/Jatin020403/quiz-api/internal/redact"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a migration command (up, down, status, version) and exit")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		slog.Error("quiz-api exited with error", "error", redact.Error(err))
		os.Exit(1)
	}
}

func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	log.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"llm_backend", cfg.LLM.Backend,
		"model", cfg.LLM.ModelName)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	pool, err := postgres.NewPool(connectCtx, cfg.Database)
	cancel()
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if migrateCmd != "" {
		return postgres.Migrate(ctx, pool, migrateCmd, log)
	}
	if err := postgres.Migrate(ctx, pool, postgres.MigrateUp, log); err != nil {
		return err
	}

	model, err := gemini.New(ctx, cfg.LLM, gemini.NewADCSource(), log)
	if err != nil {
		return fmt.Errorf("failed to initialize model client: %w", err)
	}

	app, err := newApplication(cfg, log, pool, model)
	if err != nil {
		return err
	}
	return app.Run(ctx)
}
