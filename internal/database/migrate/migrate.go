// Package migrate brings the session database schema up to date.
package migrate

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"

	"github.com/festy23/sportsday/internal/database/config"
	sessionModel "github.com/festy23/sportsday/internal/session/model"
)

//go:embed migrations/*.sql
var embedded embed.FS

// GetMigrationsPath returns the migrations directory override, or "" to use
// the migrations compiled into the binary.
func GetMigrationsPath() string {
	return config.GetEnv("MIGRATIONS_PATH", "")
}

// Migrate applies the schema for driver. Postgres runs the versioned SQL
// migrations with golang-migrate; sqlite uses gorm AutoMigrate.
func Migrate(db *gorm.DB, driver string) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	switch driver {
	case config.DriverSQLite:
		if err := db.AutoMigrate(&sessionModel.Entry{}); err != nil {
			return fmt.Errorf("failed to auto-migrate: %w", err)
		}
		return nil
	case config.DriverPostgres:
		return migratePostgres(db)
	default:
		return fmt.Errorf("unsupported database driver: %q", driver)
	}
}

func migratePostgres(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sourceName, src, err := openSource()
	if err != nil {
		return err
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	var m *migrate.Migrate
	if src != nil {
		m, err = migrate.NewWithInstance(sourceName, src, "postgres", driver)
	} else {
		m, err = migrate.NewWithDatabaseInstance(sourceName, "postgres", driver)
	}
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

// openSource returns the embedded source driver, or a file:// URL when
// MIGRATIONS_PATH is set.
func openSource() (string, source.Driver, error) {
	dir := GetMigrationsPath()
	if dir == "" {
		src, err := iofs.New(embedded, "migrations")
		if err != nil {
			return "", nil, fmt.Errorf("failed to open embedded migrations: %w", err)
		}
		return "iofs", src, nil
	}

	path, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		return "", nil, fmt.Errorf("migrations directory does not exist: %s", path)
	}
	return fmt.Sprintf("file://%s", path), nil, nil
}
