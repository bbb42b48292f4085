// Package api assembles the HTTP surface: registration, token login,
// the session metadata document, user endpoints, health, and metrics.
// Handlers translate between the wire format and the auth service;
// domain logic lives in pkg/auth.
package api
