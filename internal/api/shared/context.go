package shared

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// ContextKey is the type of the request context keys set by this package.
type ContextKey string

const (
	// OwnerIDContextKey holds the owner id taken from a valid bearer token.
	OwnerIDContextKey ContextKey = "ownerID"

	// TraceIDKey holds the request trace id.
	TraceIDKey ContextKey = "traceID"
)

// SetTraceID adds a fresh trace id to ctx.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, strings.ReplaceAll(uuid.NewString(), "-", ""))
}

// GetTraceID returns the trace id in ctx, or "" when there is none.
func GetTraceID(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDKey).(string)
	return traceID
}

// WithOwnerID records the authenticated owner in ctx.
func WithOwnerID(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, OwnerIDContextKey, ownerID)
}

// GetOwnerID returns the authenticated owner id, if a token was presented.
func GetOwnerID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(OwnerIDContextKey).(string)
	return id, ok && id != ""
}
