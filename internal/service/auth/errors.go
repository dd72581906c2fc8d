package auth

import "errors"

var (
	// ErrInvalidToken indicates the token is malformed or its signature does not match.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the nbf or iat claim lies in the future.
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrPasswordMismatch is returned by Compare when the password is wrong.
	ErrPasswordMismatch = errors.New("password does not match")

	// ErrHashing wraps failures of the hashing primitive itself.
	ErrHashing = errors.New("password hashing failed")
)
