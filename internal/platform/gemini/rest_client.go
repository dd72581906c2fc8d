package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/Jatin020403/quiz-api/internal/config"
	"github.com/Jatin020403/quiz-api/internal/generation"
	"github.com/Jatin020403/quiz-api/internal/redact"
)

// maxResponseBytes bounds how much of a reply body is read.
const maxResponseBytes = 8 << 20

// RESTClient calls the Vertex AI generateContent endpoint directly.
type RESTClient struct {
	url        string
	genConfig  *generation.GenerationConfig
	creds      CredentialSource
	httpClient *http.Client
	logger     *slog.Logger
}

var _ generation.ModelClient = (*RESTClient)(nil)

// NewRESTClient validates cfg and builds a client. When httpClient is nil a
// client with the configured request timeout is created.
func NewRESTClient(
	cfg config.LLMConfig,
	creds CredentialSource,
	httpClient *http.Client,
	logger *slog.Logger,
) (*RESTClient, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if creds == nil {
		return nil, fmt.Errorf("%w: credential source cannot be nil", generation.ErrInvalidConfig)
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: time.Duration(cfg.RequestTimeoutSeconds) * time.Second}
	}

	return &RESTClient{
		url:        generateContentURL(cfg),
		genConfig:  generationConfig(cfg),
		creds:      creds,
		httpClient: httpClient,
		logger:     logger.With("component", "gemini_rest_client"),
	}, nil
}

// Invoke implements generation.ModelClient.
func (c *RESTClient) Invoke(ctx context.Context, prompt string) (*generation.Response, error) {
	token, err := c.creds.Token(ctx)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to obtain credential", "error", redact.Error(err))
		if !errors.Is(err, generation.ErrCredential) {
			err = fmt.Errorf("%w: %v", generation.ErrCredential, err)
		}
		return nil, err
	}

	body, err := json.Marshal(&generation.Request{
		Contents: []*generation.Content{{
			Role:  "user",
			Parts: []*generation.Part{generation.NewTextPart(prompt)},
		}},
		GenerationConfig: c.genConfig,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: encode request: %v", generation.ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", generation.ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "model request failed",
			"error", redact.Error(err),
			"duration_ms", time.Since(start).Milliseconds())
		return nil, fmt.Errorf("%w: %v", generation.ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", generation.ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp, raw)
		c.logger.ErrorContext(ctx, "model endpoint returned error status",
			"status_code", resp.StatusCode,
			"error", redact.String(apiErr.Message),
			"duration_ms", time.Since(start).Milliseconds())
		return nil, fmt.Errorf("%w: %w", generation.ErrTransport, apiErr)
	}

	var out generation.Response
	if err := json.Unmarshal(raw, &out); err != nil {
		c.logger.ErrorContext(ctx, "failed to decode model response",
			"error", redact.Error(err),
			"body_bytes", len(raw))
		return nil, fmt.Errorf("%w: %v", generation.ErrResponseDecode, err)
	}

	c.logger.DebugContext(ctx, "model request completed",
		"candidates", len(out.Candidates),
		"duration_ms", time.Since(start).Milliseconds())
	return &out, nil
}

// googleError is the error envelope returned by Google APIs.
type googleError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func newAPIError(resp *http.Response, raw []byte) *generation.APIError {
	apiErr := &generation.APIError{StatusCode: resp.StatusCode, Status: resp.Status}

	var ge googleError
	if err := json.Unmarshal(raw, &ge); err == nil && ge.Error.Message != "" {
		apiErr.Message = ge.Error.Message
		if ge.Error.Status != "" {
			apiErr.Status = ge.Error.Status
		}
		return apiErr
	}
	apiErr.Message = resp.Status
	return apiErr
}
