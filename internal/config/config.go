// Package config loads service settings from .env files and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"link-analytics-service/internal/analytics/core/domain"

	"github.com/joho/godotenv"
)

// Config holds the service configuration.
type Config struct {
	Port            string
	DatabaseURL     string
	LogLevel        string
	DefaultWindow   domain.Window
	HourBucketTZ    *time.Location
	ShutdownTimeout time.Duration

	StatsQueryTimeout time.Duration
}

// Default values
const (
	defaultPort            = "8080"
	defaultDatabaseURL     = "file:clicks.db"
	defaultLogLevel        = "info"
	defaultHourBucketTZ    = "Local"
	defaultShutdownTimeout = 5 * time.Second
	defaultQueryTimeout    = 10 * time.Second
)

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load() // ignore missing .env (e.g. prod)

	window := domain.Window(getEnvString("STATS_DEFAULT_WINDOW", string(domain.DefaultWindow)))
	if !window.Valid() {
		return nil, fmt.Errorf("STATS_DEFAULT_WINDOW: unknown window %q", window)
	}

	tzName := getEnvString("HOUR_BUCKET_TZ", defaultHourBucketTZ)
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("HOUR_BUCKET_TZ: %w", err)
	}

	return &Config{
		Port:            getEnvString("PORT", defaultPort),
		DatabaseURL:     getEnvString("DATABASE_URL", defaultDatabaseURL),
		LogLevel:        getEnvString("LOG_LEVEL", defaultLogLevel),
		DefaultWindow:   window,
		HourBucketTZ:    loc,
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", defaultShutdownTimeout),

		StatsQueryTimeout: getEnvDuration("STATS_QUERY_TIMEOUT", defaultQueryTimeout),
	}, nil
}

// getEnvString retrieves a string environment variable or returns the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration accepts "30s", "1m" or a bare number of seconds.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}
