package handler

import (
	"context"
	"io"

	"content-platform-api/internal/dto"
)

// MockDepartmentService is a mock implementation of service.DepartmentService
type MockDepartmentService struct {
	ListDepartmentsFunc  func(ctx context.Context, includeUnpublished bool) ([]*dto.DepartmentResponse, error)
	GetDepartmentFunc    func(ctx context.Context, slug string) (*dto.DepartmentDetailResponse, error)
	CreateDepartmentFunc func(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error)
	UpdateDepartmentFunc func(ctx context.Context, slug string, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error)
	DeleteDepartmentFunc func(ctx context.Context, slug string) error
}

func (m *MockDepartmentService) ListDepartments(ctx context.Context, includeUnpublished bool) ([]*dto.DepartmentResponse, error) {
	if m.ListDepartmentsFunc != nil {
		return m.ListDepartmentsFunc(ctx, includeUnpublished)
	}
	return nil, nil
}

func (m *MockDepartmentService) GetDepartment(ctx context.Context, slug string) (*dto.DepartmentDetailResponse, error) {
	if m.GetDepartmentFunc != nil {
		return m.GetDepartmentFunc(ctx, slug)
	}
	return nil, nil
}

func (m *MockDepartmentService) CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	if m.CreateDepartmentFunc != nil {
		return m.CreateDepartmentFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockDepartmentService) UpdateDepartment(ctx context.Context, slug string, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error) {
	if m.UpdateDepartmentFunc != nil {
		return m.UpdateDepartmentFunc(ctx, slug, req)
	}
	return nil, nil
}

func (m *MockDepartmentService) DeleteDepartment(ctx context.Context, slug string) error {
	if m.DeleteDepartmentFunc != nil {
		return m.DeleteDepartmentFunc(ctx, slug)
	}
	return nil
}

// MockProjectService is a mock implementation of service.ProjectService
type MockProjectService struct {
	ListProjectsFunc  func(ctx context.Context) ([]*dto.ProjectResponse, error)
	GetProjectFunc    func(ctx context.Context, slug string) (*dto.ProjectDetailResponse, error)
	CreateProjectFunc func(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectDetailResponse, error)
	UpdateProjectFunc func(ctx context.Context, slug string, req *dto.UpdateProjectRequest) (*dto.ProjectDetailResponse, error)
	DeleteProjectFunc func(ctx context.Context, slug string) error
}

func (m *MockProjectService) ListProjects(ctx context.Context) ([]*dto.ProjectResponse, error) {
	if m.ListProjectsFunc != nil {
		return m.ListProjectsFunc(ctx)
	}
	return nil, nil
}

func (m *MockProjectService) GetProject(ctx context.Context, slug string) (*dto.ProjectDetailResponse, error) {
	if m.GetProjectFunc != nil {
		return m.GetProjectFunc(ctx, slug)
	}
	return nil, nil
}

func (m *MockProjectService) CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectDetailResponse, error) {
	if m.CreateProjectFunc != nil {
		return m.CreateProjectFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockProjectService) UpdateProject(ctx context.Context, slug string, req *dto.UpdateProjectRequest) (*dto.ProjectDetailResponse, error) {
	if m.UpdateProjectFunc != nil {
		return m.UpdateProjectFunc(ctx, slug, req)
	}
	return nil, nil
}

func (m *MockProjectService) DeleteProject(ctx context.Context, slug string) error {
	if m.DeleteProjectFunc != nil {
		return m.DeleteProjectFunc(ctx, slug)
	}
	return nil
}

// MockMediaService is a mock implementation of service.MediaService
type MockMediaService struct {
	ListMediaFunc   func(ctx context.Context) ([]*dto.MediaResponse, error)
	UploadMediaFunc func(ctx context.Context, req *dto.CreateMediaRequest, fileName, contentType string, file io.Reader, author string) (*dto.MediaResponse, error)
	DeleteMediaFunc func(ctx context.Context, id uint) error
}

func (m *MockMediaService) ListMedia(ctx context.Context) ([]*dto.MediaResponse, error) {
	if m.ListMediaFunc != nil {
		return m.ListMediaFunc(ctx)
	}
	return nil, nil
}

func (m *MockMediaService) UploadMedia(ctx context.Context, req *dto.CreateMediaRequest, fileName, contentType string, file io.Reader, author string) (*dto.MediaResponse, error) {
	if m.UploadMediaFunc != nil {
		return m.UploadMediaFunc(ctx, req, fileName, contentType, file, author)
	}
	return nil, nil
}

func (m *MockMediaService) DeleteMedia(ctx context.Context, id uint) error {
	if m.DeleteMediaFunc != nil {
		return m.DeleteMediaFunc(ctx, id)
	}
	return nil
}
