package repository

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"content-platform-api/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	if err := db.AutoMigrate(
		&domain.Department{},
		&domain.Project{},
		&domain.ProjectDepartment{},
		&domain.MediaItem{},
	); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	return db
}
