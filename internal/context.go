package internal

import (
	"context"
	"time"
)

type ctxKey int

const userIDKey ctxKey = iota

// ContextWithUserID records the acting user's id on the context. The
// identity middleware calls this with the X-User-ID header value.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the acting user's id, or "" when no
// identity was stamped on the request.
func UserIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// WithTimeout caps ctx at the given duration, falling back to 5
// seconds when the caller passes zero or a negative value.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = 5 * time.Second
	}
	return context.WithTimeout(ctx, duration)
}
