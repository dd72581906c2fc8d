package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/Jatin020403/quiz-api/internal/service/auth"
)

// PasswordHasher is a testify mock of auth.PasswordHasher.
type PasswordHasher struct {
	mock.Mock
}

var _ auth.PasswordHasher = (*PasswordHasher)(nil)

// Hash is a mock implementation of auth.PasswordHasher.Hash
func (m *PasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

// Compare is a mock implementation of auth.PasswordHasher.Compare
func (m *PasswordHasher) Compare(hashedPassword, password string) error {
	args := m.Called(hashedPassword, password)
	return args.Error(0)
}
