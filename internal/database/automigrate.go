package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"content-platform-api/internal/domain"
)

// models lists every domain model in migration order. The join table comes
// after the rows it references even though no FK constraints are declared.
func models() []interface{} {
	return []interface{}{
		&domain.Department{},
		&domain.Project{},
		&domain.ProjectDepartment{},
		&domain.MediaItem{},
	}
}

// AutoMigrate runs GORM auto-migration for all domain models. Tables and
// indexes are created or updated in place based on the struct definitions.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models()...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}
	return nil
}

// AutoMigrateWithRetry runs AutoMigrate up to maxRetries times with linear
// backoff. Useful when the database comes up alongside the service.
func AutoMigrateWithRetry(db *gorm.DB, logger *zap.Logger, maxRetries int) error {
	var err error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = AutoMigrate(db)
		if err == nil {
			logger.Info("Auto-migration completed",
				zap.Int("attempt", attempt),
				zap.Int("models", len(models())),
			)
			return nil
		}

		if attempt < maxRetries {
			backoff := time.Duration(attempt) * time.Second
			logger.Warn("Auto-migration attempt failed, retrying",
				zap.Int("attempt", attempt),
				zap.Duration("backoff", backoff),
				zap.Error(err),
			)
			time.Sleep(backoff)
		}
	}

	return fmt.Errorf("migration failed after %d attempts: %w", maxRetries, err)
}
