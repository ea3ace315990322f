// Package shared holds the request and response plumbing used by every HTTP
// handler: trace IDs, JSON decoding and validation, and error responses.
package shared

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Key type for context values
type ContextKey string

// Context keys for various values
const (
	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// TraceIDHeader carries the trace ID on requests and responses
	TraceIDHeader = "X-Trace-ID"
)

// SetTraceID adds a freshly generated trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return WithTraceID(ctx, generateTraceID())
}

// WithTraceID adds the given trace ID to the context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// IsValidTraceID reports whether id has the format produced by SetTraceID.
func IsValidTraceID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// generateTraceID returns a random (version 4) UUID. If the random source
// fails it falls back to a time-based (version 1) UUID, and only as a last
// resort to the nil UUID, so request handling never stops on a trace ID.
func generateTraceID() string {
	id, err := uuid.NewRandom()
	if err == nil {
		return id.String()
	}

	slog.Error("failed to generate random trace ID",
		"error", err,
		"fallback", "time-based generation")

	id, err = uuid.NewUUID()
	if err != nil {
		slog.Error("failed to generate time-based trace ID", "error", err)
		return uuid.Nil.String()
	}
	return id.String()
}
