package middleware

import "context"

type contextKey string

const (
	ctxUsername  contextKey = "username"
	ctxSessionID contextKey = "session_id"
)

// UsernameFromContext returns the authenticated username, if any.
func UsernameFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxUsername).(string); ok {
		return v
	}
	return ""
}

// SessionIDFromContext returns the storefront session identifier seeded by
// the auth middleware. It keys the cart and checkout state.
func SessionIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxSessionID).(string); ok {
		return v
	}
	return ""
}

// WithUsername seeds the username, primarily for tests.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, ctxUsername, username)
}

// WithSessionID seeds the session id, primarily for tests.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ctxSessionID, sessionID)
}
