package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Jatin020403/quiz-api/internal/domain"
	"github.com/Jatin020403/quiz-api/internal/store"
)

// OwnerStore is a testify mock of store.OwnerStore.
type OwnerStore struct {
	mock.Mock
}

var _ store.OwnerStore = (*OwnerStore)(nil)

// Create is a mock implementation of store.OwnerStore.Create
func (m *OwnerStore) Create(ctx context.Context, owner *domain.Owner) error {
	args := m.Called(ctx, owner)
	return args.Error(0)
}

// GetByID is a mock implementation of store.OwnerStore.GetByID
func (m *OwnerStore) GetByID(ctx context.Context, id string) (*domain.Owner, error) {
	args := m.Called(ctx, id)
	if owner, ok := args.Get(0).(*domain.Owner); ok {
		return owner, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByUsername is a mock implementation of store.OwnerStore.GetByUsername
func (m *OwnerStore) GetByUsername(ctx context.Context, username string) (*domain.Owner, error) {
	args := m.Called(ctx, username)
	if owner, ok := args.Get(0).(*domain.Owner); ok {
		return owner, args.Error(1)
	}
	return nil, args.Error(1)
}

// AttachArtifact is a mock implementation of store.OwnerStore.AttachArtifact
func (m *OwnerStore) AttachArtifact(
	ctx context.Context,
	ownerID string,
	field store.ArtifactField,
	artifact domain.Artifact,
) (int64, error) {
	args := m.Called(ctx, ownerID, field, artifact)
	n, _ := args.Get(0).(int64)
	return n, args.Error(1)
}
