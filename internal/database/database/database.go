// Package database opens and manages the session database connection.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/festy23/sportsday/internal/database/config"
	"github.com/festy23/sportsday/internal/database/pool"
	"github.com/festy23/sportsday/pkg/retry"
)

const connectTimeout = 2 * time.Minute

var errNilDB = errors.New("database connection is nil")

// Open validates cfg, connects with the given retry policy and applies the
// pool settings of the driver.
func Open(ctx context.Context, cfg config.Config, retryCfg retry.Config) (*gorm.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	dialector, err := config.Dialector(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	db, err := retry.DoWithResult(ctx, retryCfg, func() (*gorm.DB, error) {
		return gorm.Open(dialector, &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
	})
	if err != nil {
		return nil, config.SanitizeError(err, cfg)
	}

	if err := pool.SetupConnectionPool(db, pool.LoadFromEnv(cfg.Driver == config.DriverSQLite)); err != nil {
		_ = Close(db)
		return nil, fmt.Errorf("setup connection pool: %w", err)
	}
	return db, nil
}

func sqlDB(db *gorm.DB) (*sql.DB, error) {
	if db == nil {
		return nil, errNilDB
	}
	s, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	return s, nil
}

// HealthCheck pings the database.
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	s, err := sqlDB(db)
	if err != nil {
		return err
	}
	if err := s.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close closes the connection pool. A nil db is a no-op.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	s, err := sqlDB(db)
	if err != nil {
		return err
	}
	if err := s.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}

// GetStats returns connection pool statistics.
func GetStats(db *gorm.DB) (sql.DBStats, error) {
	s, err := sqlDB(db)
	if err != nil {
		return sql.DBStats{}, err
	}
	return s.Stats(), nil
}
