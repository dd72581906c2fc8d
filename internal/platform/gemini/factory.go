package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Jatin020403/quiz-api/internal/config"
	"github.com/Jatin020403/quiz-api/internal/generation"
)

// New builds the ModelClient selected by cfg.Backend.
func New(ctx context.Context, cfg config.LLMConfig, creds *ADCSource, logger *slog.Logger) (generation.ModelClient, error) {
	switch cfg.Backend {
	case BackendREST, "":
		return NewRESTClient(cfg, creds, nil, logger)
	case BackendGenAI:
		authCreds, err := creds.Credentials()
		if err != nil {
			return nil, err
		}
		return NewSDKClient(ctx, cfg, authCreds, logger)
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", generation.ErrInvalidConfig, cfg.Backend)
	}
}
