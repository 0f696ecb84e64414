package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all runtime configuration. It is loaded once at startup and
// only ever read afterwards. The required variables have no default: a
// deployment without a signing secret, database, or frontend origin refuses
// to start.
type Config struct {
	Port     string `env:"PORT, default=8080"`
	Env      string `env:"ENV, default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret   string `env:"STARSKY_JWT_SECRET, required"`
	DatabaseURL string `env:"DATABASE_URL, required"`
	FrontendURL string `env:"STARSKY_FRONTEND_URL, required"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
