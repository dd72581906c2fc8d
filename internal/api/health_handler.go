package api

import (
	"net/http"

	"github.com/Jatin020403/quiz-api/internal/api/shared"
)

// HealthCheck answers GET /healthchecker.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithMessage(w, r, "All Ok")
}
