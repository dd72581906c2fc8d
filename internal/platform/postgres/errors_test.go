package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/georgysavva/scany/v2/dbscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/Jatin020403/quiz-api/internal/store"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", pgx.ErrNoRows, store.ErrNotFound},
		{"scany not found", fmt.Errorf("scany: %w", dbscan.ErrNotFound), store.ErrNotFound},
		{"unique", &pgconn.PgError{Code: uniqueViolationCode}, store.ErrDuplicate},
		{"check", &pgconn.PgError{Code: checkViolationCode, ConstraintName: "owners_role_check"}, store.ErrInvalidEntity},
		{"not null", &pgconn.PgError{Code: notNullViolationCode, ColumnName: "password"}, store.ErrInvalidEntity},
		{"other pg error", &pgconn.PgError{Code: "57014"}, store.ErrStorage},
		{"plain error", errors.New("broken pipe"), store.ErrStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err, "original error stays in the chain")
		})
	}

	assert.NoError(t, MapError(nil))
}

func TestCheckRowsAffected(t *testing.T) {
	n, err := CheckRowsAffected(pgconn.NewCommandTag("UPDATE 2"), store.ErrOwnerNotFound)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = CheckRowsAffected(pgconn.NewCommandTag("UPDATE 0"), store.ErrOwnerNotFound)
	assert.ErrorIs(t, err, store.ErrOwnerNotFound)
	assert.Zero(t, n)
}
