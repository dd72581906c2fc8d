package gemini

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cloud.google.com/go/auth"
	"google.golang.org/genai"

	"github.com/Jatin020403/quiz-api/internal/config"
	"github.com/Jatin020403/quiz-api/internal/generation"
	"github.com/Jatin020403/quiz-api/internal/redact"
)

// contentGenerator is the subset of *genai.Models used here.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// SDKClient calls the model through the genai SDK on the Vertex AI backend.
type SDKClient struct {
	models    contentGenerator
	model     string
	genConfig *genai.GenerateContentConfig
	logger    *slog.Logger
}

var _ generation.ModelClient = (*SDKClient)(nil)

// NewSDKClient validates cfg and creates a genai client for the configured
// project and location. creds may be nil, in which case the SDK discovers
// Application Default Credentials itself.
func NewSDKClient(
	ctx context.Context,
	cfg config.LLMConfig,
	creds *auth.Credentials,
	logger *slog.Logger,
) (*SDKClient, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend:     genai.BackendVertexAI,
		Project:     cfg.ProjectID,
		Location:    cfg.LocationID,
		Credentials: creds,
		// HTTPClient stays nil so the SDK wraps creds in an authorized transport.
		HTTPOptions: genai.HTTPOptions{
			BaseURL: baseURL(cfg.APIEndpoint) + "/",
			Timeout: genai.Ptr(time.Duration(cfg.RequestTimeoutSeconds) * time.Second),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create genai client: %v", generation.ErrInvalidConfig, err)
	}

	return newSDKClient(client.Models, cfg, logger), nil
}

func newSDKClient(models contentGenerator, cfg config.LLMConfig, logger *slog.Logger) *SDKClient {
	return &SDKClient{
		models: models,
		model:  cfg.ModelName,
		genConfig: &genai.GenerateContentConfig{
			MaxOutputTokens: cfg.MaxOutputTokens,
			Temperature:     genai.Ptr(cfg.Temperature),
			TopP:            genai.Ptr(cfg.TopP),
			TopK:            genai.Ptr(cfg.TopK),
		},
		logger: logger.With("component", "gemini_sdk_client"),
	}
}

// Invoke implements generation.ModelClient.
func (c *SDKClient) Invoke(ctx context.Context, prompt string) (*generation.Response, error) {
	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: prompt}},
	}}

	start := time.Now()
	resp, err := c.models.GenerateContent(ctx, c.model, contents, c.genConfig)
	if err != nil {
		c.logger.ErrorContext(ctx, "model request failed",
			"error", redact.Error(err),
			"duration_ms", time.Since(start).Milliseconds())
		return nil, fmt.Errorf("%w: %v", generation.ErrTransport, err)
	}
	if resp == nil {
		return nil, fmt.Errorf("%w: nil response from SDK", generation.ErrResponseDecode)
	}

	c.logger.DebugContext(ctx, "model request completed",
		"candidates", len(resp.Candidates),
		"duration_ms", time.Since(start).Milliseconds())
	return fromSDKResponse(resp), nil
}

// fromSDKResponse converts the SDK's response into the package-neutral shape.
func fromSDKResponse(resp *genai.GenerateContentResponse) *generation.Response {
	out := &generation.Response{}

	for _, c := range resp.Candidates {
		if c == nil {
			continue
		}
		cand := &generation.Candidate{
			Content:      fromSDKContent(c.Content),
			FinishReason: string(c.FinishReason),
		}
		for _, r := range c.SafetyRatings {
			if r == nil {
				continue
			}
			cand.SafetyRatings = append(cand.SafetyRatings, &generation.SafetyRating{
				Category:    string(r.Category),
				Probability: string(r.Probability),
				Blocked:     r.Blocked,
			})
		}
		if c.CitationMetadata != nil {
			cites := &generation.CitationMetadata{}
			for _, ci := range c.CitationMetadata.Citations {
				if ci == nil {
					continue
				}
				cites.Citations = append(cites.Citations, &generation.Citation{
					StartIndex: ci.StartIndex,
					EndIndex:   ci.EndIndex,
					URI:        ci.URI,
				})
			}
			cand.CitationMetadata = cites
		}
		out.Candidates = append(out.Candidates, cand)
	}

	if u := resp.UsageMetadata; u != nil {
		out.UsageMetadata = &generation.UsageMetadata{
			PromptTokenCount:     u.PromptTokenCount,
			CandidatesTokenCount: u.CandidatesTokenCount,
			TotalTokenCount:      u.TotalTokenCount,
		}
	}
	return out
}

func fromSDKContent(c *genai.Content) *generation.Content {
	if c == nil {
		return nil
	}
	out := &generation.Content{Role: c.Role}
	for _, p := range c.Parts {
		if p == nil {
			continue
		}
		out.Parts = append(out.Parts, fromSDKPart(p))
	}
	return out
}

func fromSDKPart(p *genai.Part) *generation.Part {
	switch {
	case p.FunctionCall != nil:
		return &generation.Part{FunctionCall: &generation.FunctionCall{
			Name: p.FunctionCall.Name,
			Args: p.FunctionCall.Args,
		}}
	case p.InlineData != nil:
		return &generation.Part{InlineData: &generation.Blob{
			MIMEType: p.InlineData.MIMEType,
			Data:     base64.StdEncoding.EncodeToString(p.InlineData.Data),
		}}
	case p.FileData != nil:
		return &generation.Part{FileData: &generation.FileData{
			MIMEType: p.FileData.MIMEType,
			FileURI:  p.FileData.FileURI,
		}}
	default:
		return generation.NewTextPart(p.Text)
	}
}
