package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/solestore/storefront-api/docs"
	"github.com/solestore/storefront-api/internal/api"
	"github.com/solestore/storefront-api/internal/core/service"
	"github.com/solestore/storefront-api/internal/infrastructure/db/postgres"
	redisinfra "github.com/solestore/storefront-api/internal/infrastructure/db/redis"
	"github.com/solestore/storefront-api/internal/infrastructure/queue"
	"github.com/solestore/storefront-api/internal/pkg/config"
	"github.com/solestore/storefront-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title           Storefront API
// @version         1.0
// @description     REST API for an online shoe store: catalog, cart, checkout, orders, and an admin dashboard.

// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
// @description                Type "Bearer" followed by a space and the JWT token.
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("postgres migration failed")
	}

	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// Order audit trail: checkout and status changes enqueue events that
	// sharded workers persist asynchronously.
	eventRepo := postgres.NewOrderEventRepository(db)
	auditSink := service.NewAuditService(eventRepo, log)
	dispatcher := queue.NewDispatcher(cfg.EventWorkers, auditSink, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, dispatcher, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server stopped")
}
