// Package db opens the database, applies the schema and seeds the catalog.
package db

import (
	"fmt"
	"time"

	"github.com/diewo77/go-quotes/internal/config"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	connectAttempts = 10
	connectBackoff  = 2 * time.Second
)

// Connect opens the configured database, retrying while Postgres starts up.
func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gcfg := gormConfig(cfg.Debug)

	if cfg.Driver == config.DriverSQLite {
		db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), gcfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", cfg.SQLitePath, err)
		}
		return db, nil
	}
	if cfg.Driver != config.DriverPostgres {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}

	var db *gorm.DB
	var err error
	for i := 0; i < connectAttempts; i++ {
		db, err = gorm.Open(postgres.Open(cfg.DSN()), gcfg)
		if err == nil {
			break
		}
		zlog.Warn().Err(err).Int("attempt", i+1).Msg("database not ready, retrying")
		time.Sleep(connectBackoff)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database after retries: %w", err)
	}

	if pingErr := db.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}
	zlog.Info().Str("host", cfg.Host).Int("port", cfg.Port).Str("db", cfg.DBName).Msg("database connected")
	return db, nil
}

// OpenSQLite opens a SQLite database from a DSN such as
// "file:name?mode=memory&cache=shared".
func OpenSQLite(dsn string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(dsn), gormConfig(false))
}

func gormConfig(debug bool) *gorm.Config {
	level := logger.Silent
	if debug {
		level = logger.Info
	}
	return &gorm.Config{Logger: logger.Default.LogMode(level)}
}

// OpenMemory opens a named shared-cache in-memory SQLite database with the
// schema applied. Each distinct name is an independent database.
func OpenMemory(name string) (*gorm.DB, error) {
	db, err := OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		return nil, err
	}
	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
