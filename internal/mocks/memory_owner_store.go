package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/Jatin020403/quiz-api/internal/domain"
	"github.com/Jatin020403/quiz-api/internal/store"
)

// InMemoryOwnerStore is a working store.OwnerStore backed by a map. Each
// call holds one lock, so attaches are atomic in the same way as the
// database update.
type InMemoryOwnerStore struct {
	mu     sync.Mutex
	owners map[string]*domain.Owner
}

var _ store.OwnerStore = (*InMemoryOwnerStore)(nil)

// NewInMemoryOwnerStore creates an empty store.
func NewInMemoryOwnerStore() *InMemoryOwnerStore {
	return &InMemoryOwnerStore{owners: make(map[string]*domain.Owner)}
}

// Seed stores owner as-is, replacing any owner with the same id.
func (s *InMemoryOwnerStore) Seed(owner *domain.Owner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.owners[owner.ID] = cloneOwner(owner)
}

// Create implements store.OwnerStore.
func (s *InMemoryOwnerStore) Create(_ context.Context, owner *domain.Owner) error {
	if err := owner.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.owners {
		if o.Username == owner.Username {
			return fmt.Errorf("%w: %q", store.ErrUsernameExists, owner.Username)
		}
	}
	if _, ok := s.owners[owner.ID]; ok {
		return store.ErrDuplicate
	}
	s.owners[owner.ID] = cloneOwner(owner)
	return nil
}

// GetByID implements store.OwnerStore.
func (s *InMemoryOwnerStore) GetByID(_ context.Context, id string) (*domain.Owner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.owners[id]
	if !ok {
		return nil, store.ErrOwnerNotFound
	}
	return cloneOwner(o), nil
}

// GetByUsername implements store.OwnerStore.
func (s *InMemoryOwnerStore) GetByUsername(_ context.Context, username string) (*domain.Owner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.owners {
		if o.Username == username {
			return cloneOwner(o), nil
		}
	}
	return nil, store.ErrOwnerNotFound
}

// AttachArtifact implements store.OwnerStore.
func (s *InMemoryOwnerStore) AttachArtifact(
	_ context.Context,
	ownerID string,
	field store.ArtifactField,
	artifact domain.Artifact,
) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.owners[ownerID]
	if !ok {
		return 0, store.ErrOwnerNotFound
	}

	switch a := artifact.(type) {
	case *domain.Flashcard:
		if field != store.FieldFlashes {
			return 0, fmt.Errorf("%w: flashcard cannot go in %q", store.ErrInvalidEntity, field)
		}
		o.Flashes = append(o.Flashes, *a)
	case *domain.Quiz:
		if field != store.FieldQuiz {
			return 0, fmt.Errorf("%w: quiz cannot go in %q", store.ErrInvalidEntity, field)
		}
		o.Quiz = append(o.Quiz, *a)
	default:
		return 0, fmt.Errorf("%w: unsupported artifact %T", store.ErrInvalidEntity, artifact)
	}
	return 1, nil
}

func cloneOwner(o *domain.Owner) *domain.Owner {
	c := *o
	c.Flashes = append([]domain.Flashcard{}, o.Flashes...)
	c.Quiz = append([]domain.Quiz{}, o.Quiz...)
	return &c
}
