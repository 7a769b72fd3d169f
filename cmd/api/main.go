package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/peoplekit/employee-system/internal/api"
	"github.com/peoplekit/employee-system/internal/core/service"
	"github.com/peoplekit/employee-system/internal/infrastructure/bootstrap"
	"github.com/peoplekit/employee-system/internal/infrastructure/config"
	mongodb "github.com/peoplekit/employee-system/internal/infrastructure/db/mongo"
	redisdb "github.com/peoplekit/employee-system/internal/infrastructure/db/redis"
	"github.com/peoplekit/employee-system/internal/infrastructure/queue"
	"github.com/peoplekit/employee-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// A long-lived bearer token cannot be revoked; surface suspicious
	// configurations instead of silently accepting them.
	if cfg.JWT.TTL > 24*time.Hour {
		log.Warn().Dur("ttl", cfg.JWT.TTL).Msg("token TTL exceeds 24h with no revocation mechanism")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Repositories ---
	accountRepo := mongodb.NewAccountRepository(db)
	employeeRepo := mongodb.NewEmployeeRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)
	employeeCache := redisdb.NewEmployeeCache(rdb)

	// --- Bootstrap ---
	if err := bootstrap.SeedAdmin(ctx, accountRepo, cfg.Seed.AdminUsername, cfg.Seed.AdminPassword, log); err != nil {
		log.Fatal().Err(err).Msg("admin seeding failed")
	}

	// --- Services ---
	tokenService := service.NewTokenService(cfg.JWT.Secret, cfg.JWT.TTL)
	authService := service.NewAuthService(accountRepo, tokenService)
	auditService := service.NewAuditService(auditRepo, log)

	dispatcher := queue.NewDispatcher(0, auditService, log)
	dispatcher.Start(ctx)

	employeeService := service.NewEmployeeService(employeeRepo, employeeCache, dispatcher, log)

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		AuthService:     authService,
		EmployeeService: employeeService,
		TokenService:    tokenService,
		Mongo:           db,
		Redis:           rdb,
		Logger:          log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
