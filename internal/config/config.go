package config

import (
	"errors" // Sentinel errors
	"fmt"    // Error wrapping
	"time"   // Durations for pool and lock settings

	"github.com/caarlos0/env/v6" // Environment to struct binding
	"github.com/joho/godotenv"   // For loading .env files
)

// ErrMissingDatabaseURL is returned when DATABASE_URL is absent or blank
var ErrMissingDatabaseURL = errors.New("DATABASE_URL is not set in environment variables")

// Config holds the application configuration
type Config struct {
	AppPort        string        `env:"PORT" envDefault:"10000"`          // Application port
	DatabaseURL    string        `env:"DATABASE_URL"`                     // Database connection string
	IsProd         bool          `env:"IS_PROD" envDefault:"false"`       // Is production environment
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`      // Logrus level name
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envSeparator:","` // CORS origins, empty allows all
	RedactErrors   bool          `env:"REDACT_ERRORS" envDefault:"false"` // Hide store messages in 5xx bodies
	RedisAddr      string        `env:"REDIS_ADDR"`                       // Redis server address
	RedisPass      string        `env:"REDIS_PASS"`                       // Redis password
	RedisDB        int           `env:"REDIS_DB" envDefault:"0"`          // Redis database number
	WalletLockTTL  time.Duration `env:"WALLET_LOCK_TTL" envDefault:"5s"`  // Expiry of a wallet connect lock
	DB             PoolConfig    `envPrefix:"DB_"`                        // Connection pool limits
}

// PoolConfig holds database/sql pool limits
type PoolConfig struct {
	MaxOpenConns    int           `env:"MAX_OPEN_CONNS" envDefault:"10"`     // Max open connections
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS" envDefault:"5"`      // Max idle connections
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"30m"` // Max connection lifetime
}

// UseRedis reports whether a Redis server was configured
func (c *Config) UseRedis() bool {
	return c.RedisAddr != ""
}

// LoadConfig loads configuration from the environment, reading a .env file first if present.
// A missing DATABASE_URL is an error: the service never starts without a store.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load() // Load .env file if present
	cfg := &Config{}
	// Bind environment variables to the struct
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	// Fail fast without a connection string
	if cfg.DatabaseURL == "" {
		return nil, ErrMissingDatabaseURL
	}
	return cfg, nil
}
