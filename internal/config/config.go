// Package config loads and validates application configuration from environment variables.
package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `env:"PORT, default=8080"`

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string `env:"DATABASE_URL, required"`

	// LogLevel controls the minimum log level.
	// Valid values: debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string `env:"CORS_ORIGINS, default=http://localhost:5173"`

	// MaxBodyBytes caps request body size. Defaults to 1 MiB.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES, default=1048576"`

	// AssignAtomic runs client creation and booking in one transaction, so a
	// failed booking does not leave a new client behind.
	AssignAtomic bool `env:"ASSIGN_ATOMIC, default=false"`

	// MigrateOnStart applies pending goose migrations before serving.
	MigrateOnStart bool `env:"MIGRATE_ON_START, default=false"`

	Redis     RedisConfig
	Telemetry TelemetryConfig
}

// RedisConfig configures the optional trip page cache.
// The cache is disabled when Addr is empty.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"`
	DB       int           `env:"REDIS_DB, default=0"`
	CacheTTL time.Duration `env:"CACHE_TTL, default=30s"`
}

// TelemetryConfig configures OpenTelemetry tracing.
// Tracing is disabled when Endpoint is empty.
type TelemetryConfig struct {
	Endpoint      string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName   string  `env:"OTEL_SERVICE_NAME, default=trip-booking"`
	SamplingRatio float64 `env:"OTEL_SAMPLING_RATIO, default=1.0"`
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error naming any required variable that is not set.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}

	cfg.CORSOrigins = trimAll(cfg.CORSOrigins)

	if cfg.MaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("config.Load: MAX_BODY_BYTES must be positive, got %d", cfg.MaxBodyBytes)
	}
	if cfg.Telemetry.SamplingRatio < 0 || cfg.Telemetry.SamplingRatio > 1 {
		return Config{}, fmt.Errorf("config.Load: OTEL_SAMPLING_RATIO must be within [0, 1], got %v", cfg.Telemetry.SamplingRatio)
	}

	return cfg, nil
}

// trimAll trims each entry and drops the empty ones.
func trimAll(in []string) []string {
	var out []string
	for _, part := range in {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
