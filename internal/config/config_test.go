package config

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DRIVER", "DB_PORT", "MIGRATIONS", "LOG_FORMAT", "DEFAULT_HOURLY_RATE", "SEED"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.Server.Port != "8080" || cfg.Server.Addr() != ":8080" {
		t.Errorf("port = %q", cfg.Server.Port)
	}
	if cfg.Database.Driver != DriverPostgres || cfg.Database.Port != 5432 {
		t.Errorf("database = %+v", cfg.Database)
	}
	if cfg.App.Migrations != MigrateAuto || !cfg.App.Seed {
		t.Errorf("app = %+v", cfg.App)
	}
	if cfg.Log.Format != "console" {
		t.Errorf("log format = %q", cfg.Log.Format)
	}
	if !cfg.Quote.DefaultHourlyRate.Equal(decimal.NewFromInt(50)) {
		t.Errorf("rate = %s", cfg.Quote.DefaultHourlyRate)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/q.db")
	t.Setenv("DB_DEBUG", "yes")
	t.Setenv("MIGRATIONS", "SQL")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SERVER_READ_TIMEOUT", "3")
	t.Setenv("DEFAULT_HOURLY_RATE", "75.50")

	cfg := Load()
	if cfg.Server.Port != "9000" {
		t.Errorf("port = %q", cfg.Server.Port)
	}
	if cfg.Database.Driver != DriverSQLite || cfg.Database.SQLitePath != "/tmp/q.db" || !cfg.Database.Debug {
		t.Errorf("database = %+v", cfg.Database)
	}
	if cfg.App.Migrations != MigrateSQL {
		t.Errorf("migrations = %q", cfg.App.Migrations)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("log format = %q", cfg.Log.Format)
	}
	if read, _, _ := cfg.Server.Timeouts(); read.Seconds() != 3 {
		t.Errorf("read timeout = %v", read)
	}
	if cfg.Quote.DefaultHourlyRate.String() != "75.5" {
		t.Errorf("rate = %s", cfg.Quote.DefaultHourlyRate)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("DB_PORT", "abc")
	t.Setenv("MIGRATIONS", "sometimes")
	t.Setenv("DEFAULT_HOURLY_RATE", "-10")
	cfg := Load()
	if cfg.Database.Port != 5432 || cfg.App.Migrations != MigrateAuto {
		t.Errorf("config = %+v", cfg)
	}
	if !cfg.Quote.DefaultHourlyRate.Equal(decimal.NewFromInt(50)) {
		t.Errorf("rate = %s", cfg.Quote.DefaultHourlyRate)
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5433, User: "u", Password: "p", DBName: "n", SSLMode: "disable"}
	if got := d.DSN(); got != "host=db port=5433 user=u password=p dbname=n sslmode=disable" {
		t.Errorf("DSN() = %q", got)
	}
	if got := d.URL(); got != "postgres://u:p@db:5433/n?sslmode=disable" {
		t.Errorf("URL() = %q", got)
	}
}
