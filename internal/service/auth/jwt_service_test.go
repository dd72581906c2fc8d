package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jatin020403/quiz-api/internal/config"
)

const (
	testSecret  = "test-secret-that-is-long-enough-for-testing"
	wrongSecret = "wrong-secret-that-is-long-enough-for-testing"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func mustService(t *testing.T, secret string, lifetime time.Duration, now func() time.Time) *hmacJWTService {
	t.Helper()
	svc, err := newHMACJWTService(secret, lifetime, now)
	require.NoError(t, err)
	return svc
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(config.AuthConfig{JWTSecret: "short", TokenLifetimeMinutes: 60})
	assert.Error(t, err)

	_, err = NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 0})
	assert.Error(t, err)

	svc, err := NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 60})
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := mustService(t, testSecret, time.Hour, fixedClock(now))

	token, err := svc.GenerateToken(context.Background(), "owner-1", "student")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "owner-1", claims.OwnerID)
	assert.Equal(t, "student", claims.Role)
	assert.Equal(t, now.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, now.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)

	_, err = svc.GenerateToken(context.Background(), "", "student")
	assert.Error(t, err)
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	issued := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	issuer := mustService(t, testSecret, time.Hour, fixedClock(issued))
	token, err := issuer.GenerateToken(context.Background(), "owner-1", "faculty")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "owner-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		svc     *hmacJWTService
		token   string
		wantErr error
	}{
		{
			name:  "valid token",
			svc:   issuer,
			token: token,
		},
		{
			name:  "within clock skew after expiry",
			svc:   mustService(t, testSecret, time.Hour, fixedClock(issued.Add(time.Hour+time.Minute))),
			token: token,
		},
		{
			name:    "expired token",
			svc:     mustService(t, testSecret, time.Hour, fixedClock(issued.Add(2*time.Hour))),
			token:   token,
			wantErr: ErrExpiredToken,
		},
		{
			name:    "issued in the future",
			svc:     mustService(t, testSecret, time.Hour, fixedClock(issued.Add(-10*time.Minute))),
			token:   token,
			wantErr: ErrTokenNotYetValid,
		},
		{
			name:    "wrong secret",
			svc:     mustService(t, wrongSecret, time.Hour, fixedClock(issued)),
			token:   token,
			wantErr: ErrInvalidToken,
		},
		{
			name:    "malformed token",
			svc:     issuer,
			token:   "not-a-jwt",
			wantErr: ErrInvalidToken,
		},
		{
			name:    "unsigned token",
			svc:     issuer,
			token:   noneToken,
			wantErr: ErrInvalidToken,
		},
		{
			name:    "empty token",
			svc:     issuer,
			token:   "",
			wantErr: ErrMissingToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := tt.svc.ValidateToken(context.Background(), tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "owner-1", claims.OwnerID)
			assert.Equal(t, "faculty", claims.Role)
		})
	}
}
