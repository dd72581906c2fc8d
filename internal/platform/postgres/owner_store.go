package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/Jatin020403/quiz-api/internal/domain"
	"github.com/Jatin020403/quiz-api/internal/redact"
	"github.com/Jatin020403/quiz-api/internal/store"
)

const ownersTable = "owners"

var ownerColumns = []string{"id", "username", "password", "role", "flashes", "quiz", "created_at"}

// psql builds statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PostgresOwnerStore implements store.OwnerStore.
type PostgresOwnerStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.OwnerStore = (*PostgresOwnerStore)(nil)

// NewPostgresOwnerStore creates an owner store on db, which may be a pool
// or a transaction.
func NewPostgresOwnerStore(db store.DBTX, logger *slog.Logger) *PostgresOwnerStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresOwnerStore{
		db:     db,
		logger: logger.With("component", "owner_store"),
	}
}

// ownerRow is the scan target for owner queries.
type ownerRow struct {
	ID        string    `db:"id"`
	Username  string    `db:"username"`
	Password  string    `db:"password"`
	Role      string    `db:"role"`
	Flashes   []byte    `db:"flashes"`
	Quiz      []byte    `db:"quiz"`
	CreatedAt time.Time `db:"created_at"`
}

func (r *ownerRow) toDomain() (*domain.Owner, error) {
	owner := &domain.Owner{
		ID:             r.ID,
		Username:       r.Username,
		HashedPassword: r.Password,
		Role:           domain.Role(r.Role),
		Flashes:        []domain.Flashcard{},
		Quiz:           []domain.Quiz{},
		CreatedAt:      r.CreatedAt,
	}
	if len(r.Flashes) > 0 {
		if err := json.Unmarshal(r.Flashes, &owner.Flashes); err != nil {
			return nil, fmt.Errorf("%w: decode flashes: %v", store.ErrStorage, err)
		}
	}
	if len(r.Quiz) > 0 {
		if err := json.Unmarshal(r.Quiz, &owner.Quiz); err != nil {
			return nil, fmt.Errorf("%w: decode quiz: %v", store.ErrStorage, err)
		}
	}
	return owner, nil
}

// Create implements store.OwnerStore.
func (s *PostgresOwnerStore) Create(ctx context.Context, owner *domain.Owner) error {
	if err := owner.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	flashes, err := json.Marshal(nonNilFlashes(owner.Flashes))
	if err != nil {
		return fmt.Errorf("%w: encode flashes: %v", store.ErrInvalidEntity, err)
	}
	quiz, err := json.Marshal(nonNilQuiz(owner.Quiz))
	if err != nil {
		return fmt.Errorf("%w: encode quiz: %v", store.ErrInvalidEntity, err)
	}

	query, args, err := psql.Insert(ownersTable).
		Columns(ownerColumns...).
		Values(owner.ID, owner.Username, owner.HashedPassword, string(owner.Role), flashes, quiz, owner.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: %q", store.ErrUsernameExists, owner.Username)
		}
		s.logger.ErrorContext(ctx, "failed to create owner", "error", redact.Error(err))
		return store.NewStoreError("owner", "create", "insert failed", MapError(err))
	}

	s.logger.DebugContext(ctx, "owner created", "owner_id", owner.ID, "role", owner.Role)
	return nil
}

// GetByID implements store.OwnerStore.
func (s *PostgresOwnerStore) GetByID(ctx context.Context, id string) (*domain.Owner, error) {
	return s.getOne(ctx, sq.Eq{"id": id})
}

// GetByUsername implements store.OwnerStore.
func (s *PostgresOwnerStore) GetByUsername(ctx context.Context, username string) (*domain.Owner, error) {
	return s.getOne(ctx, sq.Eq{"username": username})
}

func (s *PostgresOwnerStore) getOne(ctx context.Context, where sq.Eq) (*domain.Owner, error) {
	query, args, err := psql.Select(ownerColumns...).
		From(ownersTable).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var row ownerRow
	if err := pgxscan.Get(ctx, s.db, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, store.ErrOwnerNotFound
		}
		s.logger.ErrorContext(ctx, "failed to load owner", "error", redact.Error(err))
		return nil, store.NewStoreError("owner", "get", "select failed", MapError(err))
	}
	return row.toDomain()
}

// AttachArtifact implements store.OwnerStore. The update appends to the
// JSONB array in place; the owner is never read first.
func (s *PostgresOwnerStore) AttachArtifact(
	ctx context.Context,
	ownerID string,
	field store.ArtifactField,
	artifact domain.Artifact,
) (int64, error) {
	if !field.Valid() {
		return 0, fmt.Errorf("%w: unknown artifact field %q", store.ErrInvalidEntity, field)
	}
	if artifact == nil {
		return 0, fmt.Errorf("%w: artifact cannot be nil", store.ErrInvalidEntity)
	}

	payload, err := json.Marshal(artifact)
	if err != nil {
		return 0, fmt.Errorf("%w: encode artifact: %v", store.ErrInvalidEntity, err)
	}

	column := string(field)
	query, args, err := psql.Update(ownersTable).
		Set(column, sq.Expr(column+" || jsonb_build_array(?::jsonb)", string(payload))).
		Where(sq.Eq{"id": ownerID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build update: %w", err)
	}

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to attach artifact",
			"owner_id", ownerID,
			"field", column,
			"error", redact.Error(err))
		return 0, store.NewStoreError("owner", "attach", "update failed", MapError(err))
	}

	n, err := CheckRowsAffected(tag, store.ErrOwnerNotFound)
	if err != nil {
		s.logger.WarnContext(ctx, "attach matched no owner", "owner_id", ownerID, "field", column)
		return 0, err
	}

	s.logger.DebugContext(ctx, "artifact attached",
		"owner_id", ownerID,
		"field", column,
		"artifact_id", artifact.ArtifactID())
	return n, nil
}

func nonNilFlashes(f []domain.Flashcard) []domain.Flashcard {
	if f == nil {
		return []domain.Flashcard{}
	}
	return f
}

func nonNilQuiz(q []domain.Quiz) []domain.Quiz {
	if q == nil {
		return []domain.Quiz{}
	}
	return q
}
