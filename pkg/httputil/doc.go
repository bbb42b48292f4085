// Package httputil provides HTTP utilities for standardized request/response handling.
//
// # Overview
//
// This package offers helper functions for JSON encoding/decoding, error responses,
// parameter parsing, and common HTTP middleware patterns.
//
// # Response Helpers
//
// JSON responses:
//
//	httputil.WriteJSON(w, http.StatusOK, data)
//	httputil.WriteSuccess(w, data)
//
// Error responses:
//
//	httputil.WriteBadRequest(w, "invalid input")
//	httputil.WriteUnauthorized(w, "invalid or expired token")
//	httputil.WriteForbidden(w, "not authorized to perform this operation")
//	httputil.WriteInternalError(w)
//
// WriteUnauthorized sets the WWW-Authenticate challenge expected for
// bearer-token endpoints. WriteInternalError never surfaces the
// underlying error to the caller.
//
// # Request Parsing
//
// JSON parsing:
//
//	var req RegisterRequest
//	if !httputil.ParseJSONOrError(w, r, &req) {
//		return // Error response already written
//	}
//
// Query parameters:
//
//	skip, ok := httputil.ParseQueryIntOrError(w, r, "skip", 0)
//	limit, ok := httputil.ParseQueryIntOrError(w, r, "limit", 100)
//
// # Middleware
//
//	httputil.Chain(
//		httputil.RecoveryMiddleware(logger),
//		httputil.RequestIDMiddleware,
//		httputil.LoggingMiddleware(logger),
//		httputil.CORSMiddleware(origins),
//	)
//
// # Related Packages
//
//   - pkg/middleware: Bearer-token authentication middleware
package httputil
