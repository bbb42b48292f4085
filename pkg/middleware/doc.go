// Package middleware provides the bearer-token authentication gateway
// for protected routes. Request-scoped middleware that is not
// auth-specific (logging, recovery, CORS, request IDs) lives in
// pkg/httputil.
package middleware
