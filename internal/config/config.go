package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"go.uber.org/zap"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv                string        `env:"APP_ENV" envDefault:"development"`
	DBDriver              string        `env:"DB_DRIVER" envDefault:"sqlite3"`
	DBPath                string        `env:"DB_PATH" envDefault:"assessment.db"`
	RedisAddr             string        `env:"REDIS_ADDR"`
	RedisPassword         string        `env:"REDIS_PASSWORD"`
	RedisDB               int           `env:"REDIS_DB" envDefault:"0"`
	GRPCPort              int           `env:"GRPC_PORT" envDefault:"50051"`
	GRPCReflectionEnabled bool          `env:"GRPC_REFLECTION_ENABLED" envDefault:"false"`
	HTTPPort              int           `env:"HTTP_PORT" envDefault:"8080"`
	CacheTTL              time.Duration `env:"CACHE_TTL" envDefault:"10m"`
	SeedCatalog           bool          `env:"SEED_CATALOG" envDefault:"true"`
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.CacheTTL <= 0 {
		return nil, fmt.Errorf("CACHE_TTL must be positive, got %s", cfg.CacheTTL)
	}
	return &cfg, nil
}

// CachingEnabled reports whether a redis address was configured.
func (c *Config) CachingEnabled() bool {
	return c.RedisAddr != ""
}

// NewLogger creates a new Zap logger based on the config.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.AppEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
