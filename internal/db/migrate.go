package db

import (
	"embed"
	"errors"
	"fmt"

	"github.com/diewo77/go-quotes/internal/config"
	"github.com/diewo77/go-quotes/internal/models"
	migrate "github.com/golang-migrate/migrate/v4"
	// Registers the postgres driver for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Models lists every persisted model in dependency order.
func Models() []any {
	return []any{
		&models.User{},
		&models.WebsiteType{},
		&models.Feature{},
		&models.Task{},
		&models.Quote{},
		&models.QuoteTask{},
	}
}

// RequiredTables must exist once the schema is applied.
var RequiredTables = []string{
	"users", "website_types", "features", "tasks",
	"feature_website_type", "feature_task",
	"quotes", "quote_features", "quote_tasks",
}

// AutoMigrate applies the gorm model schema.
func AutoMigrate(db *gorm.DB) error {
	for _, m := range Models() {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}
	return nil
}

// Migrate applies the schema according to mode and checks the core tables.
// SQL mode runs the embedded golang-migrate files and requires Postgres.
func Migrate(db *gorm.DB, cfg config.DatabaseConfig, mode string) error {
	switch mode {
	case config.MigrateOff:
		zlog.Info().Msg("migrations disabled")
		return nil
	case config.MigrateSQL:
		if cfg.Driver != config.DriverPostgres {
			return fmt.Errorf("sql migrations require postgres, got %q", cfg.Driver)
		}
		if err := runSQLMigrations(cfg.URL()); err != nil {
			return fmt.Errorf("sql migrations failed: %w", err)
		}
	default:
		if err := AutoMigrate(db); err != nil {
			return err
		}
	}

	for _, table := range RequiredTables {
		if !db.Migrator().HasTable(table) {
			return errors.New("missing table after migration: " + table)
		}
	}
	zlog.Info().Str("mode", mode).Msg("schema up to date")
	return nil
}

func runSQLMigrations(url string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, url)
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
