package middleware

import "context"

type contextKey string

const ctxUserID contextKey = "user_id"

// UserIDFromContext returns the authenticated user id, zero when absent.
func UserIDFromContext(ctx context.Context) (uint64, bool) {
	if ctx == nil {
		return 0, false
	}
	if v, ok := ctx.Value(ctxUserID).(uint64); ok {
		return v, true
	}
	return 0, false
}

// WithUserID injects the authenticated user id into the context.
func WithUserID(ctx context.Context, userID uint64) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxUserID, userID)
}
