package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role distinguishes the two kinds of owner account.
type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleFaculty
}

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// Owner is a student or faculty record. Generated artifacts are appended
// to Flashes and Quiz by the store; the service layer never rewrites them.
type Owner struct {
	ID             string      `json:"_id"`
	Username       string      `json:"username"`
	HashedPassword string      `json:"-"`
	Role           Role        `json:"role"`
	Flashes        []Flashcard `json:"flashes"`
	Quiz           []Quiz      `json:"quiz"`
	CreatedAt      time.Time   `json:"created_at"`
}

// NewOwner builds an owner with empty artifact lists. The caller supplies
// an already hashed password.
func NewOwner(username, hashedPassword string, role Role) (*Owner, error) {
	o := &Owner{
		ID:             uuid.NewString(),
		Username:       username,
		HashedPassword: hashedPassword,
		Role:           role,
		Flashes:        []Flashcard{},
		Quiz:           []Quiz{},
		CreatedAt:      time.Now().UTC(),
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate checks the fields required before an owner can be stored.
func (o *Owner) Validate() error {
	if o.ID == "" {
		return fmt.Errorf("%w: owner id cannot be empty", ErrValidation)
	}
	if strings.TrimSpace(o.Username) == "" {
		return fmt.Errorf("%w: username cannot be empty", ErrValidation)
	}
	if o.HashedPassword == "" {
		return fmt.Errorf("%w: hashed password cannot be empty", ErrValidation)
	}
	if !o.Role.Valid() {
		return fmt.Errorf("%w: %w: %q", ErrValidation, ErrUnknownRole, o.Role)
	}
	return nil
}

// ValidatePlaintextPassword checks a password before it is hashed.
func ValidatePlaintextPassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: password cannot be empty", ErrValidation)
	}
	if len(password) > maxPasswordBytes {
		return fmt.Errorf("%w: password must be at most %d bytes", ErrValidation, maxPasswordBytes)
	}
	return nil
}
