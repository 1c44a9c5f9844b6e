// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	Host            string        `env:"PORTFOLIO_HOST"`
	Port            int           `env:"PORT" envDefault:"8080"`
	Env             string        `env:"PORTFOLIO_ENV" envDefault:"development"`
	LogLevel        string        `env:"PORTFOLIO_LOG_LEVEL" envDefault:"info"`
	ViewTTL         time.Duration `env:"PORTFOLIO_VIEW_TTL" envDefault:"30m"`
	ShutdownTimeout time.Duration `env:"PORTFOLIO_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Addr returns the listen address in host:port format.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SlogLevel maps LogLevel onto a slog level. Unknown names fall back to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	switch cfg.Env {
	case "development", "production":
	default:
		return nil, fmt.Errorf("PORTFOLIO_ENV must be development or production, got %q", cfg.Env)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("PORT out of range: %d", cfg.Port)
	}
	if cfg.ViewTTL <= 0 {
		return nil, fmt.Errorf("PORTFOLIO_VIEW_TTL must be positive, got %s", cfg.ViewTTL)
	}

	return cfg, nil
}
