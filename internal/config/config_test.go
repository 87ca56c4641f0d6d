package config

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/job-portal-search/internal/selection"
)

var envKeys = []string{
	"PORT", "GIN_MODE", "DATA_SOURCE", "DATABASE_URL", "UNKNOWN_FILTER_POLICY",
	"SESSION_CAPACITY", "CORS_ALLOWED_ORIGINS", "LOG_LEVEL", "LOG_FORMAT",
}

// clearEnv blanks every key so the host environment cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, SourceMemory, cfg.DataSource)
	assert.Equal(t, selection.FallbackAll, cfg.UnknownFilterPolicy)
	assert.Equal(t, 1024, cfg.SessionCapacity)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_SOURCE", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/jobs")
	t.Setenv("UNKNOWN_FILTER_POLICY", "PREVIEW")
	t.Setenv("SESSION_CAPACITY", "32")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://jobs.example.com ,")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, SourcePostgres, cfg.DataSource)
	assert.Equal(t, selection.FallbackPreview, cfg.UnknownFilterPolicy)
	assert.Equal(t, 32, cfg.SessionCapacity)
	assert.Equal(t, []string{"http://localhost:5173", "https://jobs.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestFromEnv_Invalid(t *testing.T) {
	cases := []struct {
		name string
		key  string
		val  string
		want string
	}{
		{"policy", "UNKNOWN_FILTER_POLICY", "ignore", "UNKNOWN_FILTER_POLICY"},
		{"capacity not a number", "SESSION_CAPACITY", "lots", "SESSION_CAPACITY"},
		{"capacity negative", "SESSION_CAPACITY", "-1", "SESSION_CAPACITY"},
		{"data source", "DATA_SOURCE", "mysql", "DATA_SOURCE"},
		{"postgres without url", "DATA_SOURCE", "postgres", "DATABASE_URL"},
		{"log level", "LOG_LEVEL", "chatty", "LOG_LEVEL"},
		{"log format", "LOG_FORMAT", "xml", "LOG_FORMAT"},
		{"port", "PORT", "http", "PORT"},
		{"gin mode", "GIN_MODE", "verbose", "GIN_MODE"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.val)

			cfg, err := FromEnv()
			assert.Nil(t, cfg)
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestNewLogger(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "warn")
	cfg, err := FromEnv()
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := cfg.NewLogger(&buf)
	logger.Info("dropped")
	logger.Warn("kept", "filter", "campus")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.True(t, strings.HasPrefix(out, "{"), out)
	assert.Contains(t, out, `"filter":"campus"`)
}
