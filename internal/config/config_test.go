package config

import (
	"testing"
	"time"

	"link-analytics-service/internal/analytics/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "DATABASE_URL", "LOG_LEVEL", "STATS_DEFAULT_WINDOW", "HOUR_BUCKET_TZ", "SHUTDOWN_TIMEOUT", "STATS_QUERY_TIMEOUT"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "file:clicks.db", cfg.DatabaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, domain.WindowWeek, cfg.DefaultWindow)
	assert.Equal(t, time.Local, cfg.HourBucketTZ)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 10*time.Second, cfg.StatsQueryTimeout)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/clicks")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("STATS_DEFAULT_WINDOW", "30d")
	t.Setenv("HOUR_BUCKET_TZ", "UTC")
	t.Setenv("SHUTDOWN_TIMEOUT", "10")
	t.Setenv("STATS_QUERY_TIMEOUT", "2s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres://localhost/clicks", cfg.DatabaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, domain.WindowMonth, cfg.DefaultWindow)
	assert.Equal(t, "UTC", cfg.HourBucketTZ.String())
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 2*time.Second, cfg.StatsQueryTimeout)
}

func TestLoad_InvalidWindow(t *testing.T) {
	clearEnv(t)
	t.Setenv("STATS_DEFAULT_WINDOW", "2w")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STATS_DEFAULT_WINDOW")
}

func TestLoad_InvalidTimeZone(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOUR_BUCKET_TZ", "Mars/Olympus_Mons")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HOUR_BUCKET_TZ")
}

func TestGetEnvDuration(t *testing.T) {
	key := "TEST_ENV_DURATION"

	tests := []struct {
		name       string
		envVal     string
		defaultVal time.Duration
		want       time.Duration
	}{
		{"ValidDuration", "1m", time.Second, time.Minute},
		{"ValidSeconds", "60", time.Second, 60 * time.Second},
		{"Invalid", "invalid", time.Second, time.Second},
		{"Empty", "", time.Second, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(key, tt.envVal)
			assert.Equal(t, tt.want, getEnvDuration(key, tt.defaultVal))
		})
	}
}
