package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Jatin020403/quiz-api/internal/generation"
	"github.com/Jatin020403/quiz-api/internal/platform/logger"
	"github.com/Jatin020403/quiz-api/internal/redact"
)

// Envelope status values.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
)

// MessageResponse is the envelope used by most endpoints.
type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

// GenerateResponse carries the full model reply from the generate endpoints.
type GenerateResponse struct {
	Status   string               `json:"status"`
	Response *generation.Response `json:"response"`
	TraceID  string               `json:"trace_id,omitempty"`
}

// LoginResponse reports a login outcome. UserID and Token are only set on
// success.
type LoginResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	UserID  string `json:"user_id,omitempty"`
	Token   string `json:"token,omitempty"`
	TraceID string `json:"trace_id,omitempty"`
}

// RespondWithJSON writes data as JSON with the given status code.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContextOrDefault(r.Context()).Error("failed to encode JSON response", "error", redact.Error(err))
	}
}

// RespondWithMessage writes a success envelope carrying message.
func RespondWithMessage(w http.ResponseWriter, r *http.Request, message string) {
	RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Status:  StatusSuccess,
		Message: message,
		TraceID: GetTraceID(r.Context()),
	})
}

// RespondWithFail writes a fail envelope. The message is redacted before it
// leaves the process.
func RespondWithFail(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondWithJSON(w, r, status, MessageResponse{
		Status:  StatusFail,
		Message: redact.String(message),
		TraceID: GetTraceID(r.Context()),
	})
}

// RespondWithErrorAndLog logs err and writes a fail envelope whose message
// is the error text. 5xx responses are logged at ERROR, everything else at
// DEBUG.
func RespondWithErrorAndLog(w http.ResponseWriter, r *http.Request, status int, err error) {
	traceID := GetTraceID(r.Context())
	message := "an unexpected error occurred"
	if err != nil {
		message = err.Error()
	}

	attrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
	}
	if err != nil {
		attrs = append(attrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	level := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	logger.FromContextOrDefault(r.Context()).LogAttrs(r.Context(), level, "API error response", attrs...)

	RespondWithFail(w, r, status, message)
}
