package store

import (
	"context"
	"fmt"

	"github.com/Jatin020403/quiz-api/internal/domain"
)

// ArtifactField names the owner array an artifact is appended to. Only
// the values declared here are ever interpolated into SQL.
type ArtifactField string

const (
	FieldFlashes ArtifactField = "flashes"
	FieldQuiz    ArtifactField = "quiz"
)

// Valid reports whether f is one of the declared fields.
func (f ArtifactField) Valid() bool {
	return f == FieldFlashes || f == FieldQuiz
}

// FieldFor returns the owner field that stores artifacts of kind k.
func FieldFor(k domain.ArtifactKind) (ArtifactField, error) {
	switch k {
	case domain.KindFlashcard:
		return FieldFlashes, nil
	case domain.KindQuiz:
		return FieldQuiz, nil
	default:
		return "", fmt.Errorf("%w: %w: %d", ErrInvalidEntity, domain.ErrUnknownKind, int(k))
	}
}

// OwnerStore persists owners and their generated artifacts.
type OwnerStore interface {
	// Create inserts a new owner with empty artifact lists.
	// Returns ErrUsernameExists if the username is taken.
	Create(ctx context.Context, owner *domain.Owner) error

	// GetByID loads an owner including its artifacts.
	// Returns ErrOwnerNotFound if no owner has the id.
	GetByID(ctx context.Context, id string) (*domain.Owner, error)

	// GetByUsername loads an owner including its password hash.
	// Returns ErrOwnerNotFound if no owner has the username.
	GetByUsername(ctx context.Context, username string) (*domain.Owner, error)

	// AttachArtifact appends artifact to the owner's field in one atomic
	// update without reading the owner first. It returns the number of
	// owners modified; when that is zero the error is ErrOwnerNotFound and
	// nothing was written. Concurrent calls against the same owner all land.
	AttachArtifact(ctx context.Context, ownerID string, field ArtifactField, artifact domain.Artifact) (int64, error)
}
