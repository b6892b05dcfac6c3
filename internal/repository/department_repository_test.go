package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"content-platform-api/internal/domain"
)

func TestDepartmentRepository_CreateAndFindBySlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDepartmentRepository(db)
	ctx := context.Background()

	department := &domain.Department{
		Title:     "Robotics Lab",
		Slug:      "robotics-lab",
		Blocks:    datatypes.JSON("[]"),
		Team:      datatypes.JSON(`[{"name":"Kim"}]`),
		Resources: datatypes.JSON("[]"),
		Published: true,
	}
	require.NoError(t, repo.Create(ctx, department))
	assert.NotZero(t, department.ID)

	found, err := repo.FindBySlug(ctx, "robotics-lab")
	require.NoError(t, err)
	assert.Equal(t, department.ID, found.ID)
	assert.Equal(t, "Robotics Lab", found.Title)
}

func TestDepartmentRepository_FindBySlug_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDepartmentRepository(db)

	_, err := repo.FindBySlug(context.Background(), "missing")

	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestDepartmentRepository_FindAll_PublishedFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDepartmentRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Department{Title: "Public", Slug: "public", Published: true}))
	require.NoError(t, repo.Create(ctx, &domain.Department{Title: "Hidden", Slug: "hidden", Published: false}))

	published, err := repo.FindAll(ctx, true)
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, "public", published[0].Slug)

	all, err := repo.FindAll(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDepartmentRepository_FindBySlug_PreloadsLinkedProjects(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDepartmentRepository(db)
	projectRepo := NewProjectRepository(db)
	ctx := context.Background()

	department := &domain.Department{Title: "Robotics", Slug: "robotics"}
	require.NoError(t, repo.Create(ctx, department))

	project := &domain.Project{Title: "Arm Controller", Slug: "arm-controller", Status: "planned"}
	require.NoError(t, projectRepo.Create(ctx, project))
	require.NoError(t, projectRepo.AddLink(ctx, project.ID, department.ID))

	found, err := repo.FindBySlug(ctx, "robotics")
	require.NoError(t, err)
	require.Len(t, found.Links, 1)
	require.NotNil(t, found.Links[0].Project)
	assert.Equal(t, "arm-controller", found.Links[0].Project.Slug)
}

func TestDepartmentRepository_Update_DoesNotWriteBackLinks(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDepartmentRepository(db)
	projectRepo := NewProjectRepository(db)
	ctx := context.Background()

	department := &domain.Department{Title: "Robotics", Slug: "robotics"}
	require.NoError(t, repo.Create(ctx, department))
	project := &domain.Project{Title: "Arm Controller", Slug: "arm-controller"}
	require.NoError(t, projectRepo.Create(ctx, project))
	require.NoError(t, projectRepo.AddLink(ctx, project.ID, department.ID))

	// Load with preloaded links, mutate a scalar, save
	loaded, err := repo.FindBySlug(ctx, "robotics")
	require.NoError(t, err)
	loaded.Description = "updated"
	require.NoError(t, repo.Update(ctx, loaded))

	var linkCount int64
	db.Model(&domain.ProjectDepartment{}).Count(&linkCount)
	assert.Equal(t, int64(1), linkCount)

	reloaded, err := repo.FindBySlug(ctx, "robotics")
	require.NoError(t, err)
	assert.Equal(t, "updated", reloaded.Description)
}

func TestDepartmentRepository_Delete_RemovesJoinRows(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDepartmentRepository(db)
	projectRepo := NewProjectRepository(db)
	ctx := context.Background()

	department := &domain.Department{Title: "Robotics", Slug: "robotics"}
	require.NoError(t, repo.Create(ctx, department))
	project := &domain.Project{Title: "Arm Controller", Slug: "arm-controller"}
	require.NoError(t, projectRepo.Create(ctx, project))
	require.NoError(t, projectRepo.AddLink(ctx, project.ID, department.ID))

	require.NoError(t, repo.Delete(ctx, department.ID))

	var linkCount int64
	db.Model(&domain.ProjectDepartment{}).Where("department_id = ?", department.ID).Count(&linkCount)
	assert.Zero(t, linkCount)

	_, err := repo.FindBySlug(ctx, "robotics")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// The project itself survives
	_, err = projectRepo.FindBySlug(ctx, "arm-controller")
	assert.NoError(t, err)
}
