package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Jatin020403/quiz-api/internal/api/shared"
	"github.com/Jatin020403/quiz-api/internal/platform/logger"
	"github.com/Jatin020403/quiz-api/internal/redact"
	"github.com/Jatin020403/quiz-api/internal/service/auth"
)

// AuthMiddleware reads bearer tokens issued at login.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates an AuthMiddleware.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// OptionalAuth lets requests without an Authorization header through
// untouched. A present header must hold a valid bearer token; its owner id
// is then added to the context.
func (m *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}

		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			shared.RespondWithFail(w, r, http.StatusUnauthorized, "invalid authorization format")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), strings.TrimSpace(token))
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithFail(w, r, http.StatusUnauthorized, "token expired")
			case errors.Is(err, auth.ErrInvalidToken),
				errors.Is(err, auth.ErrTokenNotYetValid),
				errors.Is(err, auth.ErrMissingToken):
				shared.RespondWithFail(w, r, http.StatusUnauthorized, "invalid token")
			default:
				logger.FromContextOrDefault(r.Context()).Error("failed to validate token",
					"error", redact.Error(err))
				shared.RespondWithFail(w, r, http.StatusInternalServerError, "authentication error")
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(shared.WithOwnerID(r.Context(), claims.OwnerID)))
	})
}
