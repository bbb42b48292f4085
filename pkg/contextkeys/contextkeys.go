// Package contextkeys provides centralized context key definitions.
//
// All context keys used across the application are defined here so that
// key usage stays discoverable and collisions are impossible.
package contextkeys

import "context"

// Key is the type for context keys to prevent collisions
type Key string

const (
	// UserKey contains the *users.User resolved by the auth middleware.
	// Set by: middleware.Auth (pkg/middleware/auth.go)
	// Required by: all protected API endpoints
	UserKey Key = "current_user"

	// RequestIDKey contains the request ID string (UUID)
	// Set by: httputil.RequestIDMiddleware
	// Used by: request logging
	RequestIDKey Key = "request_id"
)

// WithUser adds the authenticated user to the context
func WithUser(ctx context.Context, user interface{}) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

// User returns the authenticated user from the context, or nil
func User(ctx context.Context) interface{} {
	return ctx.Value(UserKey)
}

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// RequestID returns the request ID from the context, or ""
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}
