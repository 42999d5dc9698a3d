package core

import (
	"context"
	"time"
)

// Context keys for command options
type contextKey string

const generatedAtKey contextKey = "generatedAt"

// WithGeneratedAt pins the timestamp stamped on reports and exports.
func WithGeneratedAt(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, generatedAtKey, t)
}

// generatedAt returns the pinned timestamp from context, or the current time.
func generatedAt(ctx context.Context) time.Time {
	val := ctx.Value(generatedAtKey)
	if val == nil {
		return time.Now() // default: stamp with wall clock
	}
	t, ok := val.(time.Time)
	if !ok || t.IsZero() {
		return time.Now()
	}
	return t
}
