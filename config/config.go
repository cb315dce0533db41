// Package config holds environment-backed process configuration.
package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds everything the server needs at startup. The JWT secret and
// token TTL are injected into the token service from here rather than read
// from globals, so tests can run with their own keys.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   []byte
	TokenTTL    time.Duration
}

// Load reads configuration from environment variables, applying defaults
// where a value is optional. DATABASE_URL is required.
func Load() (Config, error) {
	cfg := Config{
		Port:        os.Getenv("PORT"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   []byte(os.Getenv("JWT_SECRET")),
	}

	if cfg.Port == "" {
		cfg.Port = "3001"
	}
	if cfg.DatabaseURL == "" {
		return cfg, fmt.Errorf("DATABASE_URL environment variable is not set")
	}
	if len(cfg.JWTSecret) == 0 {
		cfg.JWTSecret = []byte("default-dev-secret-change-me")
	}

	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return cfg, fmt.Errorf("invalid TOKEN_TTL %q: %w", raw, err)
		}
		cfg.TokenTTL = ttl
	}

	return cfg, nil
}
