package auth

import (
	"context"
	"time"
)

// JWTService issues and checks the bearer tokens handed out at login.
type JWTService interface {
	// GenerateToken signs a token whose subject is ownerID.
	GenerateToken(ctx context.Context, ownerID string, role string) (string, error)

	// ValidateToken verifies signature and time claims and returns the
	// decoded claims.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the decoded content of a valid token.
type Claims struct {
	OwnerID   string    `json:"sub,omitempty"`
	Role      string    `json:"role,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
