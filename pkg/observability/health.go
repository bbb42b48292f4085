package observability

import (
	"context"
	"database/sql"
	"time"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"

	DatabaseConnected    = "connected"
	DatabaseDisconnected = "disconnected"
)

// HealthChecker reports service and database health
type HealthChecker struct {
	db      *sql.DB
	timeout time.Duration
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(db *sql.DB) *HealthChecker {
	return &HealthChecker{
		db:      db,
		timeout: 5 * time.Second,
	}
}

// Status is the result of a health check
type Status struct {
	Status         string    `json:"status"`
	DatabaseStatus string    `json:"database_status"`
	Timestamp      time.Time `json:"timestamp"`
}

// Check pings the database and reports overall health
func (h *HealthChecker) Check(ctx context.Context) Status {
	status := Status{
		Status:         StatusHealthy,
		DatabaseStatus: DatabaseConnected,
		Timestamp:      time.Now().UTC(),
	}

	if h.db == nil {
		status.Status = StatusUnhealthy
		status.DatabaseStatus = DatabaseDisconnected
		return status
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		status.Status = StatusUnhealthy
		status.DatabaseStatus = DatabaseDisconnected
	}

	return status
}
