package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Server config
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)

	// Distance config
	assert.Equal(t, "localhost:50051", cfg.Distance.Endpoint)
	assert.Equal(t, 30, cfg.Distance.TimeoutSeconds)
	assert.Equal(t, 8080, cfg.Distance.DownloadPort)

	// Database config
	assert.Equal(t, 6432, cfg.Database.Port)
	assert.Equal(t, "owntracks", cfg.Database.Name)
	assert.Equal(t, 5, cfg.Database.PoolMax)
	assert.False(t, cfg.DatabaseConfigured())

	// Storage config
	assert.Equal(t, "/data", cfg.Storage.DataDir)

	// Logging config
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)

	// Rate limit config
	assert.Equal(t, 100, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 200, cfg.RateLimit.Burst)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	envVars := map[string]string{
		"PORT":                      "9000",
		"HOST":                      "127.0.0.1",
		"DISTANCE_SERVICE_ENDPOINT": "otel-worker:50051",
		"DISTANCE_SERVICE_TIMEOUT":  "10",
		"DISTANCE_DOWNLOAD_PORT":    "9090",
		"POSTGRES_USER":             "demo",
		"POSTGRES_PASSWORD":         "secret",
		"DATA_DIR":                  "/tmp/demo-data",
		"LOG_LEVEL":                 "debug",
		"LOG_DEV":                   "true",
		"RATE_LIMIT_ENABLED":        "false",
	}

	for key, value := range envVars {
		err := os.Setenv(key, value)
		require.NoError(t, err)
		defer os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)

	assert.Equal(t, "otel-worker:50051", cfg.Distance.Endpoint)
	assert.Equal(t, 10, cfg.Distance.TimeoutSeconds)
	assert.Equal(t, 9090, cfg.Distance.DownloadPort)

	assert.True(t, cfg.DatabaseConfigured())
	assert.Equal(t, "/tmp/demo-data", cfg.Storage.DataDir)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	require.NoError(t, os.Setenv("PGBOUNCER_PORT", "not-a-port"))
	defer os.Unsetenv("PGBOUNCER_PORT")

	_, err := Load()
	assert.Error(t, err)
}
