package generation

import (
	"errors"
	"fmt"
)

// Errors returned by the generation pipeline and its ModelClient adapters.
var (
	// ErrInvalidConfig is returned when the model deployment settings are
	// missing or malformed. It is reported at construction time.
	ErrInvalidConfig = errors.New("invalid model configuration")

	// ErrCredential is returned when a bearer credential cannot be obtained.
	ErrCredential = errors.New("failed to obtain model credential")

	// ErrTransport is returned when the model endpoint could not be reached,
	// timed out, or answered with a non-success status.
	ErrTransport = errors.New("model request failed")

	// ErrResponseDecode is returned when the model answered but the body
	// could not be decoded.
	ErrResponseDecode = errors.New("failed to decode model response")

	// ErrEmptyCandidates is returned when a response holds no usable candidate.
	ErrEmptyCandidates = errors.New("model returned no candidates")

	// ErrUnexpectedPartKind is returned when the first part of the first
	// candidate is not text.
	ErrUnexpectedPartKind = errors.New("model returned a non-text part")
)

// APIError carries the status and message of a non-success reply from the
// model endpoint. It is always wrapped under ErrTransport.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("model endpoint returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("model endpoint returned status %d: %s", e.StatusCode, e.Message)
}
