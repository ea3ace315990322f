package shared

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGetTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx), "Expected empty trace ID in original context")

	ctxWithTrace := SetTraceID(ctx)

	traceID := GetTraceID(ctxWithTrace)
	require.NotEmpty(t, traceID)
	parsed, err := uuid.Parse(traceID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())

	assert.Empty(t, GetTraceID(ctx), "Expected original context to remain unchanged")
}

func TestWithTraceID(t *testing.T) {
	ctx := WithTraceID(context.Background(), "abc")
	assert.Equal(t, "abc", GetTraceID(ctx))
}

func TestGetTraceIDWithInvalidContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDKey, 123) // Not a string
	assert.Empty(t, GetTraceID(ctx))
}

func TestGenerateTraceIDUniqueness(t *testing.T) {
	const iterations = 1000
	seen := make(map[string]bool, iterations)

	for i := 0; i < iterations; i++ {
		id := generateTraceID()
		assert.False(t, seen[id], "duplicate trace ID generated: %s", id)
		seen[id] = true
	}
}

func TestIsValidTraceID(t *testing.T) {
	assert.True(t, IsValidTraceID(uuid.NewString()))
	assert.False(t, IsValidTraceID(""))
	assert.False(t, IsValidTraceID("not-a-trace-id"))
}
