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

// ProjectService defines the interface for project business logic
type ProjectService interface {
	ListProjects(ctx context.Context) ([]*dto.ProjectResponse, error)
	GetProject(ctx context.Context, slug string) (*dto.ProjectDetailResponse, error)
	CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectDetailResponse, error)
	UpdateProject(ctx context.Context, slug string, req *dto.UpdateProjectRequest) (*dto.ProjectDetailResponse, error)
	DeleteProject(ctx context.Context, slug string) error
}

// projectServiceImpl is the implementation of ProjectService
type projectServiceImpl struct {
	projectRepo repository.ProjectRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewProjectService creates a new instance of ProjectService
func NewProjectService(projectRepo repository.ProjectRepository, m *metrics.Metrics, logger *zap.Logger) ProjectService {
	return &projectServiceImpl{
		projectRepo: projectRepo,
		metrics:     m,
		logger:      logger,
	}
}

// ListProjects returns all projects with their department links resolved into
// lightweight summaries. Join rows whose department no longer exists are
// dropped.
func (s *projectServiceImpl) ListProjects(ctx context.Context) ([]*dto.ProjectResponse, error) {
	projects, err := s.projectRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch projects", err.Error())
	}

	responses := make([]*dto.ProjectResponse, 0, len(projects))
	for _, project := range projects {
		responses = append(responses, s.toProjectResponse(project))
	}
	return responses, nil
}

// GetProject returns the detail view with the full department records embedded
func (s *projectServiceImpl) GetProject(ctx context.Context, slug string) (*dto.ProjectDetailResponse, error) {
	project, err := s.projectRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Project not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch project", err.Error())
	}
	return s.toProjectDetailResponse(project), nil
}

// CreateProject creates a project and links it to the supplied departments.
// Link inserts run sequentially after the project row insert; a failure midway
// leaves the project partially linked and is reported as an error. The full
// project is re-fetched before returning so the response reflects persisted
// state rather than the request object.
func (s *projectServiceImpl) CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectDetailResponse, error) {
	slug := req.Slug
	if slug == "" {
		slug = util.Slugify(req.Title)
	}
	status := req.Status
	if status == "" {
		status = domain.StatusPlanned
	}

	project := &domain.Project{
		Title:   req.Title,
		Slug:    slug,
		Summary: req.Summary,
		Status:  status,
		Tags:    defaultArray(req.Tags),
		Images:  defaultArray(req.Images),
		Blocks:  defaultArray(req.Blocks),

		Tagline:             req.Tagline,
		PrimaryCTA:          defaultObject(req.PrimaryCTA),
		SecondaryCTA:        defaultObject(req.SecondaryCTA),
		About:               defaultObject(req.About),
		Features:            defaultArray(req.Features),
		Previews:            defaultArray(req.Previews),
		TechnicalSpecs:      defaultArray(req.TechnicalSpecs),
		UseCases:            defaultArray(req.UseCases),
		Team:                defaultArray(req.Team),
		Roadmap:             defaultArray(req.Roadmap),
		RelatedProjectsData: defaultArray(req.RelatedProjectsData),
		PlatformMetadata:    defaultObject(req.PlatformMetadata),
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create project", err.Error())
	}

	for _, departmentID := range req.EffectiveDepartmentIDs() {
		if err := s.projectRepo.AddLink(ctx, project.ID, departmentID); err != nil {
			s.logger.Error("Failed to link project to department",
				zap.Uint("project_id", project.ID),
				zap.Uint("department_id", departmentID),
				zap.Error(err),
			)
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to link project to department", err.Error())
		}
	}

	if s.metrics != nil {
		s.metrics.IncrementProjectCreated()
	}
	s.logger.Info("Project created",
		zap.Uint("project_id", project.ID),
		zap.String("slug", project.Slug),
	)

	created, err := s.projectRepo.FindByID(ctx, project.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch created project", err.Error())
	}
	return s.toProjectDetailResponse(created), nil
}

// UpdateProject applies a partial update. When a department list is supplied
// the project's links are fully replaced; omitting the field preserves the
// existing links and an empty list clears them.
func (s *projectServiceImpl) UpdateProject(ctx context.Context, slug string, req *dto.UpdateProjectRequest) (*dto.ProjectDetailResponse, error) {
	project, err := s.projectRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Project not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch project", err.Error())
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Slug != nil {
		project.Slug = *req.Slug
	}
	if req.Summary != nil {
		project.Summary = *req.Summary
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.Tags != nil {
		project.Tags = req.Tags
	}
	if req.Images != nil {
		project.Images = req.Images
	}
	if req.Blocks != nil {
		project.Blocks = req.Blocks
	}
	if req.Tagline != nil {
		project.Tagline = *req.Tagline
	}
	if req.PrimaryCTA != nil {
		project.PrimaryCTA = req.PrimaryCTA
	}
	if req.SecondaryCTA != nil {
		project.SecondaryCTA = req.SecondaryCTA
	}
	if req.About != nil {
		project.About = req.About
	}
	if req.Features != nil {
		project.Features = req.Features
	}
	if req.Previews != nil {
		project.Previews = req.Previews
	}
	if req.TechnicalSpecs != nil {
		project.TechnicalSpecs = req.TechnicalSpecs
	}
	if req.UseCases != nil {
		project.UseCases = req.UseCases
	}
	if req.Team != nil {
		project.Team = req.Team
	}
	if req.Roadmap != nil {
		project.Roadmap = req.Roadmap
	}
	if req.RelatedProjectsData != nil {
		project.RelatedProjectsData = req.RelatedProjectsData
	}
	if req.PlatformMetadata != nil {
		project.PlatformMetadata = req.PlatformMetadata
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update project", err.Error())
	}

	if departmentIDs := req.EffectiveDepartmentIDs(); departmentIDs != nil {
		if err := s.projectRepo.ReplaceLinks(ctx, project.ID, *departmentIDs); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to replace department links", err.Error())
		}
	}

	updated, err := s.projectRepo.FindByID(ctx, project.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch updated project", err.Error())
	}
	return s.toProjectDetailResponse(updated), nil
}

// DeleteProject deletes a project; its join rows are removed first so a
// subsequent listing of a formerly-linked department no longer includes it.
func (s *projectServiceImpl) DeleteProject(ctx context.Context, slug string) error {
	project, err := s.projectRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Project not found")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch project", err.Error())
	}

	if err := s.projectRepo.Delete(ctx, project.ID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete project", err.Error())
	}

	s.logger.Info("Project deleted",
		zap.Uint("project_id", project.ID),
		zap.String("slug", project.Slug),
	)
	return nil
}

// toProjectResponse builds the list-view representation with department
// summaries, dropping orphaned join rows.
func (s *projectServiceImpl) toProjectResponse(project *domain.Project) *dto.ProjectResponse {
	departments := linkedDepartments(project.Links)
	summaries := make([]dto.DepartmentSummary, 0, len(departments))
	for _, d := range departments {
		summaries = append(summaries, dto.DepartmentSummary{
			ID:    d.ID,
			Title: d.Title,
			Slug:  d.Slug,
		})
	}

	return &dto.ProjectResponse{
		ID:      project.ID,
		Title:   project.Title,
		Slug:    project.Slug,
		Summary: project.Summary,
		Status:  project.Status,
		Tags:    project.Tags,
		Images:  project.Images,
		Blocks:  project.Blocks,

		Tagline:             project.Tagline,
		PrimaryCTA:          project.PrimaryCTA,
		SecondaryCTA:        project.SecondaryCTA,
		About:               project.About,
		Features:            project.Features,
		Previews:            project.Previews,
		TechnicalSpecs:      project.TechnicalSpecs,
		UseCases:            project.UseCases,
		Team:                project.Team,
		Roadmap:             project.Roadmap,
		RelatedProjectsData: project.RelatedProjectsData,
		PlatformMetadata:    project.PlatformMetadata,

		CreatedAt: project.CreatedAt,
		UpdatedAt: project.UpdatedAt,

		RelatedDepartments: summaries,
	}
}

// toProjectDetailResponse builds the detail-view representation with the full
// department records embedded.
func (s *projectServiceImpl) toProjectDetailResponse(project *domain.Project) *dto.ProjectDetailResponse {
	departments := linkedDepartments(project.Links)
	records := make([]dto.DepartmentData, 0, len(departments))
	for _, d := range departments {
		records = append(records, toDepartmentData(d))
	}

	return &dto.ProjectDetailResponse{
		ID:      project.ID,
		Title:   project.Title,
		Slug:    project.Slug,
		Summary: project.Summary,
		Status:  project.Status,
		Tags:    project.Tags,
		Images:  project.Images,
		Blocks:  project.Blocks,

		Tagline:             project.Tagline,
		PrimaryCTA:          project.PrimaryCTA,
		SecondaryCTA:        project.SecondaryCTA,
		About:               project.About,
		Features:            project.Features,
		Previews:            project.Previews,
		TechnicalSpecs:      project.TechnicalSpecs,
		UseCases:            project.UseCases,
		Team:                project.Team,
		Roadmap:             project.Roadmap,
		RelatedProjectsData: project.RelatedProjectsData,
		PlatformMetadata:    project.PlatformMetadata,

		CreatedAt: project.CreatedAt,
		UpdatedAt: project.UpdatedAt,

		RelatedDepartments: records,
	}
}
