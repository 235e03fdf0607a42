package main

import (
	"context"

	"github.com/solestore/storefront-api/internal/infrastructure/db/postgres"
	"github.com/solestore/storefront-api/internal/pkg/config"
	"github.com/solestore/storefront-api/pkg/logger"
)

// Seeds the demo accounts, categories, and products. Safe to re-run.
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx := context.Background()

	db, err := postgres.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("postgres migration failed")
	}
	if err := postgres.Seed(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}

	log.Info().Msg("seed completed")
	log.Info().Msg("admin account: admin@example.com / admin123")
	log.Info().Msg("test account:  user@example.com / user123")
}
