// Package config provides application configuration loaded from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Migration modes.
const (
	MigrateAuto = "auto" // gorm AutoMigrate
	MigrateSQL  = "sql"  // embedded golang-migrate files (postgres only)
	MigrateOff  = "off"
)

// Database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	App      AppConfig
	Log      LogConfig
	Quote    QuoteConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string
	ReadTimeout  int // seconds
	WriteTimeout int // seconds
	IdleTimeout  int // seconds
}

func (s ServerConfig) Addr() string { return ":" + s.Port }

func (s ServerConfig) Timeouts() (read, write, idle time.Duration) {
	return time.Duration(s.ReadTimeout) * time.Second,
		time.Duration(s.WriteTimeout) * time.Second,
		time.Duration(s.IdleTimeout) * time.Second
}

// DatabaseConfig holds connection settings. SQLitePath is used when Driver is sqlite.
type DatabaseConfig struct {
	Driver     string
	Host       string
	Port       int
	User       string
	Password   string
	DBName     string
	SSLMode    string
	SQLitePath string
	Debug      bool
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Dev           bool
	Migrations    string
	Seed          bool
	SessionSecret string
}

// LogConfig controls zerolog output.
type LogConfig struct {
	Level  string
	Format string // console or json
}

// QuoteConfig holds quoting defaults.
type QuoteConfig struct {
	DefaultHourlyRate decimal.Decimal
	CompanyName       string
}

// DSN returns the PostgreSQL connection string in key=value format.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// URL returns the PostgreSQL connection string in URL format.
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Load reads configuration from environment variables.
// It uses sensible defaults for local development.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Database: DatabaseConfig{
			Driver:     strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnvInt("DB_PORT", 5432),
			User:       getEnv("DB_USER", "quotes"),
			Password:   getEnv("DB_PASSWORD", "quotes123"),
			DBName:     getEnv("DB_NAME", "quotes"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			SQLitePath: getEnv("SQLITE_PATH", "quotes.db"),
			Debug:      getEnvBool("DB_DEBUG", false),
		},
		App: AppConfig{
			Dev:           getEnvBool("DEV", true),
			Migrations:    getEnvMode("MIGRATIONS", MigrateAuto, MigrateAuto, MigrateSQL, MigrateOff),
			Seed:          getEnvBool("SEED", true),
			SessionSecret: getEnv("SESSION_SECRET", ""),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: getEnvMode("LOG_FORMAT", "console", "console", "json"),
		},
		Quote: QuoteConfig{
			DefaultHourlyRate: getEnvDecimal("DEFAULT_HOURLY_RATE", decimal.NewFromInt(50)),
			CompanyName:       getEnv("PDF_COMPANY_NAME", "Web Studio"),
		},
	}
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the integer value of an environment variable or a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

// getEnvBool returns the boolean value of an environment variable or a default.
// Accepts "1", "true", "yes" as true; everything else is false.
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "1" || value == "true" || value == "yes"
}

// getEnvDecimal parses a positive decimal or returns the default.
func getEnvDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if d, err := decimal.NewFromString(value); err == nil && d.IsPositive() {
			return d
		}
	}
	return defaultValue
}

// getEnvMode returns the lowercased value when it is one of allowed, else the default.
func getEnvMode(key, defaultValue string, allowed ...string) string {
	value := strings.ToLower(os.Getenv(key))
	for _, a := range allowed {
		if value == a {
			return a
		}
	}
	return defaultValue
}
