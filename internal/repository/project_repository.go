package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"content-platform-api/internal/domain"
)

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	FindAll(ctx context.Context) ([]*domain.Project, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Project, error)
	FindByID(ctx context.Context, id uint) (*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id uint) error
	AddLink(ctx context.Context, projectID, departmentID uint) error
	ReplaceLinks(ctx context.Context, projectID uint, departmentIDs []uint) error
	DeleteOrphanedLinks(ctx context.Context) (int64, error)
}

// projectRepositoryImpl is the GORM implementation of ProjectRepository
type projectRepositoryImpl struct {
	db *gorm.DB
}

// NewProjectRepository creates a new instance of ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

// Create creates a new project
func (r *projectRepositoryImpl) Create(ctx context.Context, project *domain.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// FindAll returns all projects, newest first, with department links resolved.
// Links whose department row no longer exists come back with a nil Department.
func (r *projectRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Project, error) {
	var projects []*domain.Project
	if err := r.db.WithContext(ctx).
		Preload("Links.Department").
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// FindBySlug finds a project by slug with department links resolved
func (r *projectRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	var project domain.Project
	if err := r.db.WithContext(ctx).
		Preload("Links.Department").
		Where("slug = ?", slug).
		First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByID finds a project by its ID with department links resolved
func (r *projectRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Project, error) {
	var project domain.Project
	if err := r.db.WithContext(ctx).
		Preload("Links.Department").
		First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Update saves all fields of the project and refreshes updated_at.
// Associations are omitted so preloaded links are never written back.
func (r *projectRepositoryImpl) Update(ctx context.Context, project *domain.Project) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(project).Error
}

// Delete removes the project's join rows first, then the project row.
// No DB-level cascade is relied upon.
func (r *projectRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).
			Delete(&domain.ProjectDepartment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Project{}, id).Error
	})
}

// AddLink inserts one join row linking the project to a department
func (r *projectRepositoryImpl) AddLink(ctx context.Context, projectID, departmentID uint) error {
	link := &domain.ProjectDepartment{
		ProjectID:    projectID,
		DepartmentID: departmentID,
	}
	return r.db.WithContext(ctx).Create(link).Error
}

// ReplaceLinks replaces the project's join rows with the supplied department
// list: existing rows are deleted in full and the new list recreated verbatim.
// The delete and recreate run in a single transaction so a failure partway
// cannot leave the project half-linked.
func (r *projectRepositoryImpl) ReplaceLinks(ctx context.Context, projectID uint, departmentIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).
			Delete(&domain.ProjectDepartment{}).Error; err != nil {
			return err
		}
		for _, departmentID := range departmentIDs {
			link := &domain.ProjectDepartment{
				ProjectID:    projectID,
				DepartmentID: departmentID,
			}
			if err := tx.Create(link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteOrphanedLinks removes join rows whose project or department row no
// longer exists. Returns the number of rows removed.
func (r *projectRepositoryImpl) DeleteOrphanedLinks(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Exec(
		`DELETE FROM project_departments
		 WHERE project_id NOT IN (SELECT id FROM projects)
		    OR department_id NOT IN (SELECT id FROM departments)`)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
