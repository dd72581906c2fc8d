package domain

import (
	"fmt"
	"strings"
)

// Mode selects which prompt the model receives.
type Mode int

const (
	// ModeKeyPoints asks for a list of extracted key points.
	ModeKeyPoints Mode = iota + 1
	// ModeMultipleChoice asks for four-option multiple choice questions.
	ModeMultipleChoice
)

func (m Mode) String() string {
	switch m {
	case ModeKeyPoints:
		return "key_points"
	case ModeMultipleChoice:
		return "multiple_choice"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m == ModeKeyPoints || m == ModeMultipleChoice
}

// GenerationRequest is the immutable input to prompt construction.
// Fields are unexported so a request can only be obtained through
// NewGenerationRequest, which enforces its invariants.
type GenerationRequest struct {
	mode       Mode
	sourceText string
	count      int
}

// NewGenerationRequest validates and builds a request. count must be at
// least one and sourceText must contain something other than whitespace.
func NewGenerationRequest(mode Mode, sourceText string, count int) (GenerationRequest, error) {
	if !mode.Valid() {
		return GenerationRequest{}, fmt.Errorf("%w: %w: %d", ErrValidation, ErrUnknownMode, int(mode))
	}
	if strings.TrimSpace(sourceText) == "" {
		return GenerationRequest{}, fmt.Errorf("%w: source text cannot be empty", ErrValidation)
	}
	if count < 1 {
		return GenerationRequest{}, fmt.Errorf("%w: count must be at least 1, got %d", ErrValidation, count)
	}
	return GenerationRequest{mode: mode, sourceText: sourceText, count: count}, nil
}

// Mode returns the requested generation mode.
func (r GenerationRequest) Mode() Mode { return r.mode }

// SourceText returns the caller-supplied text, unmodified.
func (r GenerationRequest) SourceText() string { return r.sourceText }

// Count returns the number of items requested.
func (r GenerationRequest) Count() int { return r.count }
