package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// It is wrapped with a more specific message.
	ErrValidation = errors.New("validation failed")

	// ErrUnknownMode is returned for a generation mode outside the closed set.
	ErrUnknownMode = errors.New("unknown generation mode")

	// ErrUnknownKind is returned for an artifact kind outside the closed set.
	ErrUnknownKind = errors.New("unknown artifact kind")

	// ErrUnknownRole is returned for an owner role outside the closed set.
	ErrUnknownRole = errors.New("unknown owner role")
)
