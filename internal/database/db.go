package database

import (
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/justsurfingit/job-portal-search/internal/models"
)

// ErrMissingDSN is returned when no connection string is configured.
var ErrMissingDSN = errors.New("database DSN is empty")

// Connect opens a Postgres connection and runs migrations.
func Connect(dsn string, log *slog.Logger) (*gorm.DB, error) {
	if dsn == "" {
		return nil, ErrMissingDSN
	}
	if log == nil {
		log = slog.Default()
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info("database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}
	log.Info("catalog migrations applied")
	return db, nil
}

// Migrate creates or updates the catalog table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.CatalogEntry{}); err != nil {
		return fmt.Errorf("failed to migrate catalog: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
