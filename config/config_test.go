package config_test

import (
	"testing"
	"time"

	"github.com/bookowl/backend/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/lending_test")
	t.Setenv("PORT", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("TOKEN_TTL", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "3001", cfg.Port)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Zero(t, cfg.TokenTTL)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoadTokenTTL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/lending_test")
	t.Setenv("TOKEN_TTL", "30m")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)

	t.Setenv("TOKEN_TTL", "not-a-duration")
	_, err = config.Load()
	assert.Error(t, err)
}
