package middleware

import (
	"log/slog"
	"net/http"

	"github.com/Jatin020403/quiz-api/internal/api/shared"
	"github.com/Jatin020403/quiz-api/internal/platform/logger"
)

// Trace adds a trace id to the request context and stores a logger
// carrying it, so handlers and services log with the same id.
func Trace(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			log := base.With(slog.String("trace_id", shared.GetTraceID(ctx)))

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(logger.WithLogger(ctx, log)))
		})
	}
}
