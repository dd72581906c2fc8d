package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Jatin020403/quiz-api/internal/domain"
	"github.com/Jatin020403/quiz-api/internal/redact"
	"github.com/Jatin020403/quiz-api/internal/service/auth"
	"github.com/Jatin020403/quiz-api/internal/store"
)

// LoginOutcome tells a successful login apart from the two failures.
type LoginOutcome string

const (
	LoginSuccess       LoginOutcome = "success"
	LoginUnknownUser   LoginOutcome = "unknown_user"
	LoginWrongPassword LoginOutcome = "wrong_password"
)

// LoginResult is returned by OwnerService.Login. OwnerID and Token are set
// only on success.
type LoginResult struct {
	Outcome LoginOutcome
	OwnerID string
	Token   string
}

// OwnerService manages student and faculty accounts.
type OwnerService interface {
	// Register creates an owner with empty artifact lists and returns its id.
	Register(ctx context.Context, username, password string, role domain.Role) (string, error)

	// Login checks credentials. Unknown users and wrong passwords are
	// outcomes, not errors.
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

type ownerService struct {
	owners store.OwnerStore
	hasher auth.PasswordHasher
	tokens auth.JWTService
	logger *slog.Logger
}

var _ OwnerService = (*ownerService)(nil)

// NewOwnerService creates an OwnerService.
func NewOwnerService(
	owners store.OwnerStore,
	hasher auth.PasswordHasher,
	tokens auth.JWTService,
	logger *slog.Logger,
) (OwnerService, error) {
	if owners == nil {
		return nil, fmt.Errorf("owner store cannot be nil")
	}
	if hasher == nil {
		return nil, fmt.Errorf("password hasher cannot be nil")
	}
	if tokens == nil {
		return nil, fmt.Errorf("jwt service cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ownerService{
		owners: owners,
		hasher: hasher,
		tokens: tokens,
		logger: logger.With("component", "owner_service"),
	}, nil
}

// Register implements OwnerService.
func (s *ownerService) Register(ctx context.Context, username, password string, role domain.Role) (string, error) {
	if err := domain.ValidatePlaintextPassword(password); err != nil {
		return "", err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to hash password", "error", redact.Error(err))
		return "", fmt.Errorf("%w: %w", ErrHashing, err)
	}

	owner, err := domain.NewOwner(username, hash, role)
	if err != nil {
		return "", err
	}

	if err := s.owners.Create(ctx, owner); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			s.logger.DebugContext(ctx, "username already registered", "username", username)
		} else {
			s.logger.ErrorContext(ctx, "failed to create owner", "error", redact.Error(err))
		}
		return "", fmt.Errorf("register %s: %w", role, err)
	}

	s.logger.InfoContext(ctx, "owner registered", "owner_id", owner.ID, "role", role)
	return owner.ID, nil
}

// Login implements OwnerService.
func (s *ownerService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	owner, err := s.owners.GetByUsername(ctx, username)
	if err != nil {
		if store.IsNotFoundError(err) {
			s.logger.DebugContext(ctx, "login for unknown username")
			return &LoginResult{Outcome: LoginUnknownUser}, nil
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := s.hasher.Compare(owner.HashedPassword, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			s.logger.DebugContext(ctx, "login with wrong password", "owner_id", owner.ID)
			return &LoginResult{Outcome: LoginWrongPassword}, nil
		}
		s.logger.ErrorContext(ctx, "failed to verify password", "owner_id", owner.ID, "error", redact.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrHashing, err)
	}

	token, err := s.tokens.GenerateToken(ctx, owner.ID, string(owner.Role))
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	s.logger.InfoContext(ctx, "owner logged in", "owner_id", owner.ID)
	return &LoginResult{Outcome: LoginSuccess, OwnerID: owner.ID, Token: token}, nil
}
