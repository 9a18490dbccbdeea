package contextutil

import "context"

// Unexported key type keeps the context key collision-safe.
type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID injects the request ID into the context (also handy in tests).
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

// GetRequestID returns the request ID from the context, or "".
func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}
