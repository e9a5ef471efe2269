package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://gallery@localhost:5432/gallery")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://gallery@localhost:5432/gallery", cfg.DatabaseURL)
	assert.Equal(t, "10000", cfg.AppPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.IsProd)
	assert.False(t, cfg.RedactErrors)
	assert.False(t, cfg.UseRedis())
	assert.Empty(t, cfg.AllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.WalletLockTTL)
	assert.Equal(t, 10, cfg.DB.MaxOpenConns)
	assert.Equal(t, 5, cfg.DB.MaxIdleConns)
	assert.Equal(t, 30*time.Minute, cfg.DB.ConnMaxLifetime)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "sqlite://gallery.db")
	t.Setenv("PORT", "8080")
	t.Setenv("IS_PROD", "true")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("REDACT_ERRORS", "true")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("WALLET_LOCK_TTL", "1500ms")
	t.Setenv("DB_MAX_OPEN_CONNS", "3")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.True(t, cfg.IsProd)
	assert.True(t, cfg.RedactErrors)
	assert.True(t, cfg.UseRedis())
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 1500*time.Millisecond, cfg.WalletLockTTL)
	assert.Equal(t, 3, cfg.DB.MaxOpenConns)
}

func TestLoadConfig_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cfg, err := LoadConfig()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingDatabaseURL)
}

func TestLoadConfig_InvalidValue(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/gallery")
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := LoadConfig()
	assert.Error(t, err)
}
