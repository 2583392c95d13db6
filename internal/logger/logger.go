// Package logger scopes slog loggers to a request ID carried in the context.
package logger

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type ctxKey int

const requestIDKey ctxKey = iota

// GenerateRequestID mints a fresh request ID.
func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID stores the request ID on the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext returns the request ID if one was stored.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok && id != ""
}

// FromContext returns the default logger, tagged with the context's request
// ID when present.
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := RequestIDFromContext(ctx); ok {
		return slog.Default().With(AttrKeyRequestID, id)
	}
	return slog.Default()
}
