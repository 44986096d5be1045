// Package config provides session database configuration management.
package config

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	appConfig "github.com/festy23/sportsday/internal/config"
	"github.com/festy23/sportsday/pkg/retry"
)

// Supported drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds database connection configuration.
type Config struct {
	// Driver is either "sqlite" or "postgres".
	Driver string
	// SQLitePath is the database file used by the sqlite driver.
	SQLitePath string

	Host     string
	User     string
	Password string
	DBName   string
	Port     string
	SSLMode  string
	TimeZone string
}

// GetEnv reads an environment variable with a default fallback.
func GetEnv(key, defaultValue string) string {
	return appConfig.GetEnv(key, defaultValue)
}

// BuildDSN constructs PostgreSQL DSN string from configuration.
func BuildDSN(cfg Config) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.DBName, cfg.Port, cfg.SSLMode, cfg.TimeZone)
}

// LoadConfigFromEnv loads database configuration from environment variables.
func LoadConfigFromEnv() Config {
	return Config{
		Driver:     strings.ToLower(GetEnv("DB_DRIVER", DriverSQLite)),
		SQLitePath: GetEnv("DB_SQLITE_PATH", "sportsday.db"),
		Host:       GetEnv("DB_HOST", "localhost"),
		User:       GetEnv("DB_USER", "postgres"),
		Password:   GetEnv("DB_PASSWORD", "postgres"),
		DBName:     GetEnv("DB_NAME", "sportsday"),
		Port:       GetEnv("DB_PORT", "5432"),
		SSLMode:    GetEnv("DB_SSLMODE", "disable"),
		TimeZone:   GetEnv("DB_TIMEZONE", "UTC"),
	}
}

// Validate validates database configuration.
func (c Config) Validate() error {
	switch c.Driver {
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("DB_SQLITE_PATH is required for sqlite driver")
		}
	case DriverPostgres:
		if c.Host == "" || c.DBName == "" {
			return fmt.Errorf("DB_HOST and DB_NAME are required for postgres driver")
		}
	default:
		return fmt.Errorf("invalid DB_DRIVER: %s (must be: sqlite, postgres)", c.Driver)
	}
	return nil
}

// Dialector returns the gorm dialector for the configured driver.
func Dialector(cfg Config) (gorm.Dialector, error) {
	switch cfg.Driver {
	case DriverSQLite:
		return sqlite.Open(cfg.SQLitePath), nil
	case DriverPostgres:
		return postgres.Open(BuildDSN(cfg)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}

// SanitizeError removes sensitive information (password) from error messages.
func SanitizeError(err error, cfg Config) error {
	if err == nil {
		return nil
	}
	errMsg := err.Error()
	if cfg.Password != "" {
		errMsg = strings.ReplaceAll(errMsg, cfg.Password, "***")
	}
	return fmt.Errorf("failed to connect to database: %s", errMsg)
}

// LoadRetryConfigFromEnv loads connect retry configuration from environment
// variables. Postgres retries transient connection errors; sqlite only
// retries while the file is locked.
func LoadRetryConfigFromEnv(driver string) retry.Config {
	cfg := retry.PostgresConfig()
	if driver == DriverSQLite {
		cfg = retry.SQLiteConfig()
	}
	cfg.MaxAttempts = appConfig.GetEnvInt("DB_RETRY_MAX_ATTEMPTS", cfg.MaxAttempts)
	cfg.InitialDelay = appConfig.GetEnvDuration("DB_RETRY_INITIAL_DELAY", cfg.InitialDelay)
	cfg.MaxDelay = appConfig.GetEnvDuration("DB_RETRY_MAX_DELAY", cfg.MaxDelay)
	cfg.Multiplier = appConfig.GetEnvFloat("DB_RETRY_MULTIPLIER", cfg.Multiplier)
	return cfg
}
