package service

import "errors"

var (
	// ErrHashing indicates that a password could not be hashed or checked.
	// It is not returned for an ordinary wrong password.
	ErrHashing = errors.New("password hashing failed")

	// ErrInvalidKind indicates an artifact kind the pipeline does not produce.
	ErrInvalidKind = errors.New("invalid artifact kind")
)
