// Package config loads process settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	env "github.com/caarlos0/env/v6"
	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds everything main needs to start the server.
type Config struct {
	Port            string        `env:"PORT" envDefault:"8080" validate:"required,numeric"`
	DatabasePath    string        `env:"DATABASE_PATH" envDefault:"app.db" validate:"required"`
	StaticDir       string        `env:"STATIC_DIR" envDefault:"web/static" validate:"required"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	WriteRate       float64       `env:"WRITE_RATE" envDefault:"5" validate:"gt=0"`
	WriteBurst      float64       `env:"WRITE_BURST" envDefault:"20" validate:"gte=1"`
	PrimeRate       float64       `env:"PRIME_RATE" envDefault:"10" validate:"gt=0"`
	PrimeBurst      float64       `env:"PRIME_BURST" envDefault:"30" validate:"gte=1"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s" validate:"gt=0"`
}

// Load reads .env files (when present) into the environment, then parses
// and validates the configuration.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file: %w", err)
		}
		slog.Debug("no env file loaded", "error", err)
	}
	return Parse()
}

// Parse builds a Config from the current environment only.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field against its validate tag.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// SlogLevel maps LogLevel onto a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
