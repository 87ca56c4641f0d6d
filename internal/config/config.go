// Package config loads the server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/justsurfingit/job-portal-search/internal/selection"
	"github.com/justsurfingit/job-portal-search/internal/session"
)

// DataSource names where the catalog comes from.
type DataSource string

const (
	SourceMemory   DataSource = "memory"
	SourcePostgres DataSource = "postgres"
)

var ErrInvalidConfig = errors.New("config error")

// Config holds every setting the API server reads at startup.
type Config struct {
	Port                string
	GinMode             string
	DataSource          DataSource
	DatabaseURL         string
	UnknownFilterPolicy selection.FallbackPolicy
	SessionCapacity     int
	AllowedOrigins      []string
	LogLevel            slog.Level
	LogFormat           string
}

// Load reads an optional .env file, then the environment, and validates the result.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", "release"),
		DataSource:  DataSource(strings.ToLower(getEnv("DATA_SOURCE", string(SourceMemory)))),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	policy, err := selection.ParseFallbackPolicy(strings.ToLower(getEnv("UNKNOWN_FILTER_POLICY", string(selection.FallbackAll))))
	if err != nil {
		return nil, fmt.Errorf("%w: UNKNOWN_FILTER_POLICY: %w", ErrInvalidConfig, err)
	}
	cfg.UnknownFilterPolicy = policy

	capacity, err := strconv.Atoi(getEnv("SESSION_CAPACITY", strconv.Itoa(session.DefaultCapacity)))
	if err != nil {
		return nil, fmt.Errorf("%w: SESSION_CAPACITY must be an integer: %w", ErrInvalidConfig, err)
	}
	cfg.SessionCapacity = capacity

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("%w: LOG_LEVEL: %w", ErrInvalidConfig, err)
	}

	for _, origin := range strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and cross-field requirements.
func (c *Config) Validate() error {
	switch c.DataSource {
	case SourceMemory:
	case SourcePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("%w: DATABASE_URL is required when DATA_SOURCE=postgres", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown DATA_SOURCE %q", ErrInvalidConfig, c.DataSource)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("%w: GIN_MODE must be debug, release or test", ErrInvalidConfig)
	}
	if c.SessionCapacity <= 0 {
		return fmt.Errorf("%w: SESSION_CAPACITY must be positive", ErrInvalidConfig)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: LOG_FORMAT must be text or json", ErrInvalidConfig)
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("%w: PORT must be numeric", ErrInvalidConfig)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// NewLogger builds the process logger described by the config.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}
