package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diewo77/go-quotes/internal/config"
	"github.com/diewo77/go-quotes/internal/db"
	"github.com/diewo77/go-quotes/internal/logging"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"
)

var (
	migrateOnlyFlag = flag.Bool("migrate-only", false, "Run DB migrations and exit")
	seedOnlyFlag    = flag.Bool("seed-only", false, "Run DB seed and exit")
)

func main() {
	flag.Parse()

	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg := config.Load()
	logging.Setup(cfg.Log)

	dbConn, err := db.Connect(cfg.Database)
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to connect to database")
	}

	if *migrateOnlyFlag {
		if err := db.Migrate(dbConn, cfg.Database, migrateMode(cfg)); err != nil {
			zlog.Fatal().Err(err).Msg("migration failed")
		}
		zlog.Info().Msg("migrations completed successfully")
		return
	}

	if *seedOnlyFlag {
		if err := db.Seed(context.Background(), dbConn); err != nil {
			zlog.Fatal().Err(err).Msg("seeding failed")
		}
		zlog.Info().Msg("seeding completed successfully")
		return
	}

	if err := db.Migrate(dbConn, cfg.Database, cfg.App.Migrations); err != nil {
		zlog.Fatal().Err(err).Msg("migration failed")
	}
	if cfg.App.Seed {
		if err := db.Seed(context.Background(), dbConn); err != nil {
			zlog.Fatal().Err(err).Msg("seeding failed")
		}
	}

	read, write, idle := cfg.Server.Timeouts()
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      NewApp(dbConn, cfg),
		ReadTimeout:  read,
		WriteTimeout: write,
		IdleTimeout:  idle,
	}

	go func() {
		zlog.Info().Str("addr", srv.Addr).Bool("dev", cfg.App.Dev).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error().Err(err).Msg("error during shutdown")
	}
	zlog.Info().Msg("server stopped gracefully")
}

// migrateMode forces a schema run for -migrate-only even when MIGRATIONS=off.
func migrateMode(cfg *config.Config) string {
	if cfg.App.Migrations == config.MigrateOff {
		return config.MigrateAuto
	}
	return cfg.App.Migrations
}
