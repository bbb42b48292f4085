package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/userhub-io/userhub/pkg/observability"
)

// Config holds all application configuration. It is constructed once at
// startup and passed into each component; nothing reads ambient globals.
type Config struct {
	// App configuration
	App AppConfig

	// Server configuration
	Server ServerConfig

	// Database configuration
	Database DatabaseConfig

	// Auth configuration
	Auth AuthConfig

	// Observability configuration
	Observability ObservabilityConfig
}

// AppConfig holds application identity settings
type AppConfig struct {
	Name        string
	Environment string

	// CORSOrigins lists origins allowed by the CORS middleware
	CORSOrigins []string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds PostgreSQL connection configuration
type DatabaseConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	ConnTimeout  time.Duration
	MaxLifetime  time.Duration
}

// AuthConfig holds authentication settings
type AuthConfig struct {
	// Secret is the HMAC signing key for access tokens. Rotating it
	// invalidates every previously issued token.
	Secret string

	// AccessTokenTTL is the lifetime of issued access tokens
	AccessTokenTTL time.Duration

	// BcryptCost is the bcrypt cost parameter for password hashing
	BcryptCost int
}

// ObservabilityConfig holds logging and metrics settings
type ObservabilityConfig struct {
	LogLevel       observability.LogLevel
	MetricsEnabled bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		App:           loadAppConfig(),
		Server:        loadServerConfig(),
		Database:      loadDatabaseConfig(),
		Auth:          loadAuthConfig(),
		Observability: loadObservabilityConfig(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadAppConfig loads application identity from environment
func loadAppConfig() AppConfig {
	return AppConfig{
		Name:        getEnv("USERHUB_APP_NAME", "userhub"),
		Environment: getEnv("USERHUB_ENVIRONMENT", "development"),
		CORSOrigins: getEnvList("USERHUB_CORS_ORIGINS", []string{"*"}),
	}
}

// loadServerConfig loads server configuration from environment
func loadServerConfig() ServerConfig {
	return ServerConfig{
		Host:            getEnv("USERHUB_HOST", "0.0.0.0"),
		Port:            getEnv("USERHUB_PORT", "8000"),
		ReadTimeout:     getEnvDuration("USERHUB_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    getEnvDuration("USERHUB_WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:     getEnvDuration("USERHUB_IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: getEnvDuration("USERHUB_SHUTDOWN_TIMEOUT", 30*time.Second),
	}
}

// loadDatabaseConfig loads database configuration from environment
func loadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		URL:          getEnv("USERHUB_POSTGRES_URL", ""),
		MaxOpenConns: getEnvInt("USERHUB_POSTGRES_MAX_CONNS", 25),
		MaxIdleConns: getEnvInt("USERHUB_POSTGRES_IDLE_CONNS", 5),
		ConnTimeout:  getEnvDuration("USERHUB_POSTGRES_TIMEOUT", 10*time.Second),
		MaxLifetime:  getEnvDuration("USERHUB_POSTGRES_MAX_LIFETIME", 30*time.Minute),
	}
}

// loadAuthConfig loads authentication configuration from environment
func loadAuthConfig() AuthConfig {
	return AuthConfig{
		Secret:         getEnv("USERHUB_SECRET_KEY", ""),
		AccessTokenTTL: getEnvDuration("USERHUB_ACCESS_TOKEN_TTL", 30*time.Minute),
		BcryptCost:     getEnvInt("USERHUB_BCRYPT_COST", 12),
	}
}

// loadObservabilityConfig loads observability configuration from environment
func loadObservabilityConfig() ObservabilityConfig {
	return ObservabilityConfig{
		LogLevel:       parseLogLevel(getEnv("USERHUB_LOG_LEVEL", "info")),
		MetricsEnabled: getEnvBool("USERHUB_METRICS_ENABLED", true),
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if c.Database.URL == "" {
		return fmt.Errorf("postgres URL is required")
	}
	if c.Auth.Secret == "" {
		return fmt.Errorf("secret key is required")
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("access token TTL must be positive")
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("bcrypt cost must be between 4 and 31 (got: %d)", c.Auth.BcryptCost)
	}
	return nil
}

// parseLogLevel parses a log level string
func parseLogLevel(level string) observability.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return observability.DebugLevel
	case "info":
		return observability.InfoLevel
	case "warn", "warning":
		return observability.WarnLevel
	case "error":
		return observability.ErrorLevel
	default:
		return observability.InfoLevel
	}
}

// getEnv returns an environment variable value or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool returns a boolean environment variable or a default
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return strings.ToLower(value) == "true" || value == "1"
	}
	return defaultValue
}

// getEnvInt returns an integer environment variable or a default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvDuration returns a duration environment variable or a default
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvList returns a comma-separated environment variable or a default
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
