package gemini

import (
	"fmt"
	"strings"

	"github.com/Jatin020403/quiz-api/internal/config"
	"github.com/Jatin020403/quiz-api/internal/generation"
)

const (
	BackendREST  = "rest"
	BackendGenAI = "genai"
)

// validateConfig checks the deployment settings every adapter needs.
// Missing values are configuration errors, never defaulted here.
func validateConfig(cfg config.LLMConfig) error {
	required := []struct {
		name  string
		value string
	}{
		{"api endpoint", cfg.APIEndpoint},
		{"project id", cfg.ProjectID},
		{"location id", cfg.LocationID},
		{"model name", cfg.ModelName},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s cannot be empty", generation.ErrInvalidConfig, r.name)
		}
	}
	if cfg.MaxOutputTokens <= 0 {
		return fmt.Errorf("%w: max output tokens must be positive", generation.ErrInvalidConfig)
	}
	if cfg.RequestTimeoutSeconds <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", generation.ErrInvalidConfig)
	}
	return nil
}

// generationConfig returns the fixed sampling parameters for every call.
func generationConfig(cfg config.LLMConfig) *generation.GenerationConfig {
	return &generation.GenerationConfig{
		MaxOutputTokens: cfg.MaxOutputTokens,
		Temperature:     cfg.Temperature,
		TopP:            cfg.TopP,
		TopK:            cfg.TopK,
	}
}

// baseURL turns the configured endpoint host into a URL. An explicit
// scheme is kept so local emulators can be reached over plain HTTP.
func baseURL(endpoint string) string {
	endpoint = strings.TrimRight(strings.TrimSpace(endpoint), "/")
	if strings.Contains(endpoint, "://") {
		return endpoint
	}
	return "https://" + endpoint
}

// generateContentURL is the Vertex AI publisher model endpoint.
func generateContentURL(cfg config.LLMConfig) string {
	return fmt.Sprintf("%s/v1beta1/projects/%s/locations/%s/publishers/google/models/%s:generateContent",
		baseURL(cfg.APIEndpoint), cfg.ProjectID, cfg.LocationID, cfg.ModelName)
}
