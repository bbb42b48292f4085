package api

import (
	"time"

	"github.com/userhub-io/userhub/pkg/observability"
	"github.com/userhub-io/userhub/pkg/users"
	"github.com/userhub-io/userhub/pkg/version"
)

// RegisterRequest is the body of POST /api/auth/register. Username is
// optional; when absent the email serves as the username.
type RegisterRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is the body of a successful POST /api/auth/token
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// AuthMetadata is the auth block of the metadata document. It carries a
// freshly issued token so clients can refresh their session from a
// single call.
type AuthMetadata struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	Permissions []string  `json:"permissions"`
}

// AppMetadata identifies the running application
type AppMetadata struct {
	Name        string            `json:"name"`
	Environment string            `json:"environment"`
	Build       version.BuildInfo `json:"build"`
}

// MetadataResponse is the combined document served by
// GET /api/auth/metadata
type MetadataResponse struct {
	User        *users.User          `json:"user"`
	Health      observability.Status `json:"health"`
	Auth        AuthMetadata         `json:"auth"`
	Application AppMetadata          `json:"application"`
}

// RuntimeInfo holds Go runtime diagnostics for the health endpoint
type RuntimeInfo struct {
	GoVersion    string `json:"go_version"`
	OS           string `json:"os"`
	Arch         string `json:"arch"`
	NumCPU       int    `json:"num_cpu"`
	NumGoroutine int    `json:"num_goroutine"`
	AllocBytes   uint64 `json:"alloc_bytes"`
	SysBytes     uint64 `json:"sys_bytes"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status      string      `json:"status"`
	Database    string      `json:"database"`
	Timestamp   time.Time   `json:"timestamp"`
	Runtime     RuntimeInfo `json:"runtime"`
	Application AppMetadata `json:"application"`
}
