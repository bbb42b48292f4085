// Package observability provides structured logging, Prometheus
// metrics, health checking, and graceful shutdown management.
//
// Logger wraps stdlib slog with a JSON handler and a chainable
// WithField/WithError API. Metrics exposes HTTP request counters and
// histograms plus auth business counters on a dedicated registry.
// HealthChecker pings the database with a bounded timeout.
// ShutdownManager drains the HTTP server and runs registered closers
// on SIGINT/SIGTERM.
package observability
