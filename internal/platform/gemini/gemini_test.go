package gemini

import (
	"io"
	"log/slog"

	"github.com/Jatin020403/quiz-api/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(endpoint string) config.LLMConfig {
	return config.LLMConfig{
		Backend:               BackendREST,
		APIEndpoint:           endpoint,
		ProjectID:             "quiz-project",
		LocationID:            "us-central1",
		ModelName:             "gemini-pro",
		MaxOutputTokens:       2048,
		Temperature:           0.4,
		TopP:                  1.0,
		TopK:                  32,
		RequestTimeoutSeconds: 5,
	}
}
