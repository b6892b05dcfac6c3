package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"content-platform-api/internal/domain"
	"content-platform-api/internal/dto"
	"content-platform-api/internal/metrics"
	"content-platform-api/internal/repository"
	"content-platform-api/internal/response"
	"content-platform-api/internal/util"
)

// DepartmentService defines the interface for department business logic
type DepartmentService interface {
	ListDepartments(ctx context.Context, includeUnpublished bool) ([]*dto.DepartmentResponse, error)
	GetDepartment(ctx context.Context, slug string) (*dto.DepartmentDetailResponse, error)
	CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, slug string, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, slug string) error
}

// departmentServiceImpl is the implementation of DepartmentService
type departmentServiceImpl struct {
	departmentRepo repository.DepartmentRepository
	metrics        *metrics.Metrics
	logger         *zap.Logger
}

// NewDepartmentService creates a new instance of DepartmentService
func NewDepartmentService(departmentRepo repository.DepartmentRepository, m *metrics.Metrics, logger *zap.Logger) DepartmentService {
	return &departmentServiceImpl{
		departmentRepo: departmentRepo,
		metrics:        m,
		logger:         logger,
	}
}

// ListDepartments returns departments enhanced with derived statistics.
// The public listing includes published departments only.
func (s *departmentServiceImpl) ListDepartments(ctx context.Context, includeUnpublished bool) ([]*dto.DepartmentResponse, error) {
	departments, err := s.departmentRepo.FindAll(ctx, !includeUnpublished)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch departments", err.Error())
	}

	responses := make([]*dto.DepartmentResponse, 0, len(departments))
	for _, department := range departments {
		responses = append(responses, toDepartmentResponse(department))
	}
	return responses, nil
}

// GetDepartment returns the detail view: the stats bundle plus the reduced
// projections of the department's linked projects.
func (s *departmentServiceImpl) GetDepartment(ctx context.Context, slug string) (*dto.DepartmentDetailResponse, error) {
	department, err := s.departmentRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Department not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch department", err.Error())
	}

	projects := linkedProjects(department.Links)
	summaries := make([]dto.ProjectSummary, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, dto.ProjectSummary{
			ID:      p.ID,
			Title:   p.Title,
			Slug:    p.Slug,
			Summary: p.Summary,
			Status:  p.Status,
			Tags:    p.Tags,
		})
	}

	return &dto.DepartmentDetailResponse{
		DepartmentResponse: *toDepartmentResponse(department),
		Projects:           summaries,
	}, nil
}

// CreateDepartment creates a department. The slug is derived from the title
// when absent and every JSON field defaults to an empty array.
func (s *departmentServiceImpl) CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	slug := req.Slug
	if slug == "" {
		slug = util.Slugify(req.Title)
	}

	department := &domain.Department{
		Title:       req.Title,
		Slug:        slug,
		Description: req.Description,
		HeroImage:   req.HeroImage,
		Blocks:      defaultArray(req.Blocks),
		Team:        defaultArray(req.Team),
		Resources:   defaultArray(req.Resources),
		Published:   req.Published,
	}

	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create department", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementDepartmentCreated()
	}
	s.logger.Info("Department created",
		zap.Uint("department_id", department.ID),
		zap.String("slug", department.Slug),
	)

	return toDepartmentResponse(department), nil
}

// UpdateDepartment applies a partial update: only supplied fields change and
// updated_at is always refreshed.
func (s *departmentServiceImpl) UpdateDepartment(ctx context.Context, slug string, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error) {
	department, err := s.departmentRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Department not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch department", err.Error())
	}

	if req.Title != nil {
		department.Title = *req.Title
	}
	if req.Slug != nil {
		department.Slug = *req.Slug
	}
	if req.Description != nil {
		department.Description = *req.Description
	}
	if req.HeroImage != nil {
		department.HeroImage = *req.HeroImage
	}
	if req.Blocks != nil {
		department.Blocks = req.Blocks
	}
	if req.Team != nil {
		department.Team = req.Team
	}
	if req.Resources != nil {
		department.Resources = req.Resources
	}
	if req.Published != nil {
		department.Published = *req.Published
	}

	if err := s.departmentRepo.Update(ctx, department); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update department", err.Error())
	}

	return toDepartmentResponse(department), nil
}

// DeleteDepartment deletes a department and its join rows
func (s *departmentServiceImpl) DeleteDepartment(ctx context.Context, slug string) error {
	department, err := s.departmentRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Department not found")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch department", err.Error())
	}

	if err := s.departmentRepo.Delete(ctx, department.ID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete department", err.Error())
	}

	s.logger.Info("Department deleted",
		zap.Uint("department_id", department.ID),
		zap.String("slug", department.Slug),
	)
	return nil
}

// toDepartmentData converts the stored fields of a department
func toDepartmentData(department *domain.Department) dto.DepartmentData {
	return dto.DepartmentData{
		ID:          department.ID,
		Title:       department.Title,
		Slug:        department.Slug,
		Description: department.Description,
		HeroImage:   department.HeroImage,
		Blocks:      department.Blocks,
		Team:        department.Team,
		Resources:   department.Resources,
		Published:   department.Published,
		CreatedAt:   department.CreatedAt,
		UpdatedAt:   department.UpdatedAt,
	}
}

// toDepartmentResponse attaches the derived statistics, filtering orphaned
// join rows before counting.
func toDepartmentResponse(department *domain.Department) *dto.DepartmentResponse {
	projects := linkedProjects(department.Links)
	stats := ComputeProjectStats(projectStatuses(projects))

	return &dto.DepartmentResponse{
		DepartmentData:    toDepartmentData(department),
		TotalProjects:     stats.TotalProjects,
		CompletedProjects: stats.CompletedProjects,
		Drafts:            stats.Drafts,
		ActiveProjects:    stats.ActiveProjects,
		TeamSize:          TeamSize(department.Team),
	}
}
