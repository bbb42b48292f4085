// Package config provides application configuration management from environment variables.
//
// # Overview
//
// This package loads and validates configuration from environment variables with
// sensible defaults for all settings except the database URL and token secret,
// which must be provided.
//
// # Configuration Structure
//
// Application settings:
//
//	USERHUB_APP_NAME="userhub"
//	USERHUB_ENVIRONMENT="development"
//	USERHUB_CORS_ORIGINS="*"  # comma-separated origins
//
// Server settings:
//
//	USERHUB_HOST="0.0.0.0"
//	USERHUB_PORT="8000"
//	USERHUB_READ_TIMEOUT="15s"
//	USERHUB_WRITE_TIMEOUT="15s"
//	USERHUB_IDLE_TIMEOUT="60s"
//	USERHUB_SHUTDOWN_TIMEOUT="30s"
//
// Database settings:
//
//	USERHUB_POSTGRES_URL="postgres://localhost/userhub"  # required
//	USERHUB_POSTGRES_MAX_CONNS="25"
//	USERHUB_POSTGRES_IDLE_CONNS="5"
//	USERHUB_POSTGRES_TIMEOUT="10s"
//	USERHUB_POSTGRES_MAX_LIFETIME="30m"
//
// Auth settings:
//
//	USERHUB_SECRET_KEY="..."  # required, HMAC signing key
//	USERHUB_ACCESS_TOKEN_TTL="30m"
//	USERHUB_BCRYPT_COST="12"
//
// Observability settings:
//
//	USERHUB_LOG_LEVEL="info"  # debug, info, warn, error
//	USERHUB_METRICS_ENABLED="true"
//
// # Usage Example
//
// Load configuration:
//
//	cfg, err := config.LoadConfig()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Printf("Server: %s:%s\n", cfg.Server.Host, cfg.Server.Port)
//	fmt.Printf("Log level: %s\n", cfg.Observability.LogLevel)
//
// # Related Packages
//
//   - pkg/auth: Uses auth configuration
//   - pkg/observability: Uses observability configuration
package config
