package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Jatin020403/quiz-api/internal/domain"
	"github.com/Jatin020403/quiz-api/internal/generation"
	"github.com/Jatin020403/quiz-api/internal/redact"
	"github.com/Jatin020403/quiz-api/internal/store"
)

// GenerationResult is the outcome of one model round trip.
type GenerationResult struct {
	// Text is the first candidate's first text part, unparsed.
	Text string
	// Response is the full decoded model reply.
	Response *generation.Response
}

// ContentService runs the generation pipeline for both artifact kinds.
type ContentService interface {
	// Generate builds a prompt for kind from sourceText, calls the model and
	// extracts the reply text. Nothing is persisted.
	Generate(ctx context.Context, kind domain.ArtifactKind, sourceText string, count int) (*GenerationResult, error)

	// Create generates from topic and appends the result to the owner's
	// array for kind. A missing owner is reported as store.ErrOwnerNotFound
	// even though generation succeeded.
	Create(ctx context.Context, kind domain.ArtifactKind, ownerID, topic string, count int) (domain.Artifact, error)
}

type contentService struct {
	model  generation.ModelClient
	owners store.OwnerStore
	logger *slog.Logger
}

var _ ContentService = (*contentService)(nil)

// NewContentService creates a ContentService.
func NewContentService(model generation.ModelClient, owners store.OwnerStore, logger *slog.Logger) (ContentService, error) {
	if model == nil {
		return nil, fmt.Errorf("model client cannot be nil")
	}
	if owners == nil {
		return nil, fmt.Errorf("owner store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &contentService{
		model:  model,
		owners: owners,
		logger: logger.With("component", "content_service"),
	}, nil
}

// Generate implements ContentService.
func (s *contentService) Generate(
	ctx context.Context,
	kind domain.ArtifactKind,
	sourceText string,
	count int,
) (*GenerationResult, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidKind, kind)
	}

	req, err := domain.NewGenerationRequest(kind.Mode(), sourceText, count)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := s.model.Invoke(ctx, generation.BuildPrompt(req))
	if err != nil {
		s.logger.ErrorContext(ctx, "model invocation failed",
			"kind", kind.String(),
			"count", count,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", redact.Error(err))
		return nil, fmt.Errorf("generate %s: %w", kind, err)
	}

	text, err := generation.ExtractText(resp)
	if err != nil {
		s.logger.WarnContext(ctx, "model reply had no usable text",
			"kind", kind.String(),
			"error", redact.Error(err))
		return nil, fmt.Errorf("generate %s: %w", kind, err)
	}

	s.logger.InfoContext(ctx, "content generated",
		"kind", kind.String(),
		"count", count,
		"text_length", len(text),
		"duration_ms", time.Since(start).Milliseconds())

	return &GenerationResult{Text: text, Response: resp}, nil
}

// Create implements ContentService.
func (s *contentService) Create(
	ctx context.Context,
	kind domain.ArtifactKind,
	ownerID, topic string,
	count int,
) (domain.Artifact, error) {
	field, err := store.FieldFor(kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidKind, kind)
	}
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner id cannot be empty", domain.ErrValidation)
	}

	result, err := s.Generate(ctx, kind, topic, count)
	if err != nil {
		return nil, err
	}

	artifact, err := domain.NewArtifact(kind, topic, result.Text)
	if err != nil {
		return nil, err
	}

	if _, err := s.owners.AttachArtifact(ctx, ownerID, field, artifact); err != nil {
		s.logger.ErrorContext(ctx, "failed to attach artifact",
			"kind", kind.String(),
			"owner_id", ownerID,
			"artifact_id", artifact.ArtifactID(),
			"error", redact.Error(err))
		return nil, fmt.Errorf("attach %s: %w", kind, err)
	}

	s.logger.InfoContext(ctx, "artifact attached",
		"kind", kind.String(),
		"owner_id", ownerID,
		"artifact_id", artifact.ArtifactID())
	return artifact, nil
}
