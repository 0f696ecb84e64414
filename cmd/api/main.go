package main

import (
	"context"

	"github.com/starsky/backend/internal/api"
	"github.com/starsky/backend/internal/infrastructure/config"
	"github.com/starsky/backend/internal/infrastructure/db/postgres"
	"github.com/starsky/backend/pkg/logger"
)

func main() {
	cfg, err := config.Load(context.Background())
	if err != nil {
		// Configuration is required before the real logger exists; a bare
		// logger still gets the fatal out as structured JSON.
		l := logger.Init(logger.Options{})
		l.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, err := postgres.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}

	e, err := api.NewRouter(cfg, db, log)
	if err != nil {
		log.Fatal().Err(err).Msg("router setup failed")
	}

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting starsky backend")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
