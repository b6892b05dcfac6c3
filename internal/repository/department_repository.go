package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"content-platform-api/internal/domain"
)

// DepartmentRepository defines the interface for department data access
type DepartmentRepository interface {
	Create(ctx context.Context, department *domain.Department) error
	FindAll(ctx context.Context, publishedOnly bool) ([]*domain.Department, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Department, error)
	FindByID(ctx context.Context, id uint) (*domain.Department, error)
	Update(ctx context.Context, department *domain.Department) error
	Delete(ctx context.Context, id uint) error
}

// departmentRepositoryImpl is the GORM implementation of DepartmentRepository
type departmentRepositoryImpl struct {
	db *gorm.DB
}

// NewDepartmentRepository creates a new instance of DepartmentRepository
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// Create creates a new department
func (r *departmentRepositoryImpl) Create(ctx context.Context, department *domain.Department) error {
	return r.db.WithContext(ctx).Create(department).Error
}

// FindAll returns departments with their project links resolved. Links whose
// project row no longer exists come back with a nil Project; callers filter
// those out before aggregating.
func (r *departmentRepositoryImpl) FindAll(ctx context.Context, publishedOnly bool) ([]*domain.Department, error) {
	var departments []*domain.Department
	q := r.db.WithContext(ctx).Preload("Links.Project")
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	if err := q.Order("created_at DESC").Find(&departments).Error; err != nil {
		return nil, err
	}
	return departments, nil
}

// FindBySlug finds a department by slug with project links resolved
func (r *departmentRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*domain.Department, error) {
	var department domain.Department
	if err := r.db.WithContext(ctx).
		Preload("Links.Project").
		Where("slug = ?", slug).
		First(&department).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

// FindByID finds a department by its ID
func (r *departmentRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Department, error) {
	var department domain.Department
	if err := r.db.WithContext(ctx).First(&department, id).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

// Update saves all fields of the department and refreshes updated_at.
// Associations are omitted so preloaded links are never written back.
func (r *departmentRepositoryImpl) Update(ctx context.Context, department *domain.Department) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(department).Error
}

// Delete removes the department's join rows first, then the department row.
// No DB-level cascade is relied upon.
func (r *departmentRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("department_id = ?", id).
			Delete(&domain.ProjectDepartment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Department{}, id).Error
	})
}
