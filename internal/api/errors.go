package api

import (
	"errors"
	"net/http"

	"github.com/Jatin020403/quiz-api/internal/api/shared"
	"github.com/Jatin020403/quiz-api/internal/domain"
	"github.com/Jatin020403/quiz-api/internal/platform/pdf"
	"github.com/Jatin020403/quiz-api/internal/service"
	"github.com/Jatin020403/quiz-api/internal/store"
)

// ErrForbidden is returned when a bearer token names a different owner
// than the form.
var ErrForbidden = errors.New("token does not belong to the requested user")

// MapErrorToStatusCode maps service errors to HTTP status codes. Input
// problems are 400. Pipeline failures, including a missing owner on
// create, are 500.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, shared.ErrBadForm),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, service.ErrInvalidKind),
		errors.Is(err, pdf.ErrNotPDF),
		errors.Is(err, pdf.ErrUnreadable),
		errors.Is(err, pdf.ErrNoText):
		return http.StatusBadRequest

	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden

	case store.IsDuplicateError(err):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}
