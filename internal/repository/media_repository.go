package repository

import (
	"context"

	"gorm.io/gorm"

	"content-platform-api/internal/domain"
)

// MediaRepository defines the interface for media item data access
type MediaRepository interface {
	Create(ctx context.Context, item *domain.MediaItem) error
	FindAll(ctx context.Context) ([]*domain.MediaItem, error)
	FindByID(ctx context.Context, id uint) (*domain.MediaItem, error)
	Delete(ctx context.Context, id uint) error
}

// mediaRepositoryImpl is the GORM implementation of MediaRepository
type mediaRepositoryImpl struct {
	db *gorm.DB
}

// NewMediaRepository creates a new instance of MediaRepository
func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepositoryImpl{db: db}
}

// Create creates a new media item
func (r *mediaRepositoryImpl) Create(ctx context.Context, item *domain.MediaItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// FindAll returns all media items, newest first
func (r *mediaRepositoryImpl) FindAll(ctx context.Context) ([]*domain.MediaItem, error) {
	var items []*domain.MediaItem
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID finds a media item by its ID
func (r *mediaRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.MediaItem, error) {
	var item domain.MediaItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete deletes a media item by ID. The stored object behind FileKey is left
// in place.
func (r *mediaRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.MediaItem{}, id).Error
}
