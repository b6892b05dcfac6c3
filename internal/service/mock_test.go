package service

import (
	"context"
	"io"

	"content-platform-api/internal/domain"
)

// MockDepartmentRepository is a mock implementation of DepartmentRepository
type MockDepartmentRepository struct {
	CreateFunc     func(ctx context.Context, department *domain.Department) error
	FindAllFunc    func(ctx context.Context, publishedOnly bool) ([]*domain.Department, error)
	FindBySlugFunc func(ctx context.Context, slug string) (*domain.Department, error)
	FindByIDFunc   func(ctx context.Context, id uint) (*domain.Department, error)
	UpdateFunc     func(ctx context.Context, department *domain.Department) error
	DeleteFunc     func(ctx context.Context, id uint) error
}

func (m *MockDepartmentRepository) Create(ctx context.Context, department *domain.Department) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, department)
	}
	return nil
}

func (m *MockDepartmentRepository) FindAll(ctx context.Context, publishedOnly bool) ([]*domain.Department, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, publishedOnly)
	}
	return nil, nil
}

func (m *MockDepartmentRepository) FindBySlug(ctx context.Context, slug string) (*domain.Department, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *MockDepartmentRepository) FindByID(ctx context.Context, id uint) (*domain.Department, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockDepartmentRepository) Update(ctx context.Context, department *domain.Department) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, department)
	}
	return nil
}

func (m *MockDepartmentRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockProjectRepository is a mock implementation of ProjectRepository
type MockProjectRepository struct {
	CreateFunc              func(ctx context.Context, project *domain.Project) error
	FindAllFunc             func(ctx context.Context) ([]*domain.Project, error)
	FindBySlugFunc          func(ctx context.Context, slug string) (*domain.Project, error)
	FindByIDFunc            func(ctx context.Context, id uint) (*domain.Project, error)
	UpdateFunc              func(ctx context.Context, project *domain.Project) error
	DeleteFunc              func(ctx context.Context, id uint) error
	AddLinkFunc             func(ctx context.Context, projectID, departmentID uint) error
	ReplaceLinksFunc        func(ctx context.Context, projectID uint, departmentIDs []uint) error
	DeleteOrphanedLinksFunc func(ctx context.Context) (int64, error)
}

func (m *MockProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, project)
	}
	return nil
}

func (m *MockProjectRepository) FindAll(ctx context.Context) ([]*domain.Project, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockProjectRepository) FindBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uint) (*domain.Project, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, project)
	}
	return nil
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockProjectRepository) AddLink(ctx context.Context, projectID, departmentID uint) error {
	if m.AddLinkFunc != nil {
		return m.AddLinkFunc(ctx, projectID, departmentID)
	}
	return nil
}

func (m *MockProjectRepository) ReplaceLinks(ctx context.Context, projectID uint, departmentIDs []uint) error {
	if m.ReplaceLinksFunc != nil {
		return m.ReplaceLinksFunc(ctx, projectID, departmentIDs)
	}
	return nil
}

func (m *MockProjectRepository) DeleteOrphanedLinks(ctx context.Context) (int64, error) {
	if m.DeleteOrphanedLinksFunc != nil {
		return m.DeleteOrphanedLinksFunc(ctx)
	}
	return 0, nil
}

// MockMediaRepository is a mock implementation of MediaRepository
type MockMediaRepository struct {
	CreateFunc   func(ctx context.Context, item *domain.MediaItem) error
	FindAllFunc  func(ctx context.Context) ([]*domain.MediaItem, error)
	FindByIDFunc func(ctx context.Context, id uint) (*domain.MediaItem, error)
	DeleteFunc   func(ctx context.Context, id uint) error
}

func (m *MockMediaRepository) Create(ctx context.Context, item *domain.MediaItem) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	return nil
}

func (m *MockMediaRepository) FindAll(ctx context.Context) ([]*domain.MediaItem, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockMediaRepository) FindByID(ctx context.Context, id uint) (*domain.MediaItem, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockMediaRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockStorage is a mock implementation of StorageClient
type MockStorage struct {
	GenerateFileKeyFunc func(fileName string) (string, error)
	UploadFileFunc      func(ctx context.Context, key string, file io.Reader, contentType string) (string, error)
	DeleteFileFunc      func(ctx context.Context, key string) error
	GetFileURLFunc      func(key string) string
}

func (m *MockStorage) GenerateFileKey(fileName string) (string, error) {
	if m.GenerateFileKeyFunc != nil {
		return m.GenerateFileKeyFunc(fileName)
	}
	return "media/test/" + fileName, nil
}

func (m *MockStorage) UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	if m.UploadFileFunc != nil {
		return m.UploadFileFunc(ctx, key, file, contentType)
	}
	return "https://storage.example.com/" + key, nil
}

func (m *MockStorage) DeleteFile(ctx context.Context, key string) error {
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(ctx, key)
	}
	return nil
}

func (m *MockStorage) GetFileURL(key string) string {
	if m.GetFileURLFunc != nil {
		return m.GetFileURLFunc(key)
	}
	return "https://storage.example.com/" + key
}
