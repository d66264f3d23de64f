package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	httpadapter "inscription-api/internal/adapter/http"
	"inscription-api/internal/adapter/postgres"
	redisadapter "inscription-api/internal/adapter/redis"
	"inscription-api/internal/adapter/usecase"
	"inscription-api/internal/config"
	"inscription-api/internal/config/configs"
	"inscription-api/internal/core/domain"
	"inscription-api/internal/core/port"
	"inscription-api/internal/db"
)

// main is the entry point of the inscription API. It loads configuration,
// optionally runs database migrations, initializes the database pool, the
// rotation state backend and the use cases, then starts the HTTP server. On
// receiving a termination signal it stops accepting requests, drains the
// pending attributions and exits.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.New(os.Stdout)
	slog.SetDefault(logger)

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	var states port.RotationStateStore = postgres.NewRotationStateRepository(pool)
	if cfg.Rotation.Backend == configs.StateBackendRedis {
		var client *redis.Client
		client, err = db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return
		}
		defer client.Close()
		states = redisadapter.NewRotationStateStore(client, cfg.Redis.KeyPrefix)
	}

	linkRepo := postgres.NewLinkRepository(pool)
	clickRepo := postgres.NewClickRepository(pool)

	rotation := usecase.NewRotationUseCase(linkRepo, states, usecase.RotationOptions{
		Key:         cfg.Rotation.Key,
		Policy:      domain.RotationPolicy(cfg.Rotation.Policy),
		Hold:        cfg.Rotation.Hold,
		CASAttempts: cfg.Rotation.CASAttempts,
	}, logger)
	attributor := usecase.NewAttributor(clickRepo, usecase.AttributorOptions{
		Buffer:  cfg.Attribution.Buffer,
		Workers: cfg.Attribution.Workers,
		Timeout: cfg.Attribution.Timeout,
	}, logger)
	defer attributor.Close()

	handler := httpadapter.NewHandler(httpadapter.Services{
		Rotation:    rotation,
		Attribution: attributor,
		Links:       usecase.NewLinkUseCase(linkRepo),
		Clicks:      usecase.NewClickUseCase(clickRepo),
	}, httpadapter.Options{
		FallbackURL: cfg.Rotation.FallbackURL,
		JWTSecret:   []byte(cfg.Auth.JWTSecret),
		AdminRole:   cfg.Auth.AdminRole,
	}, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("state_backend", cfg.Rotation.Backend),
			slog.String("policy", cfg.Rotation.Policy),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
		exitCode = 0
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
