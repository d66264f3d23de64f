package main

import (
	"context"
	"log/slog"
	"os"

	"inscription-api/internal/config"
	"inscription-api/internal/db"
)

// main inserts the demo links into the configured database, applying the
// migrations first.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := cfg.Log.New(os.Stdout)

	if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
		logger.Error("migration error", slog.Any("error", err))
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if err = db.Seed(ctx, pool); err != nil {
		logger.Error("seed error", slog.Any("error", err))
		pool.Close()
		os.Exit(1)
	}
	logger.Info("seed data inserted")
}
