package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"content-platform-api/internal/dto"
	"content-platform-api/internal/response"
	"content-platform-api/internal/service"
)

// ProjectHandler handles project HTTP requests
type ProjectHandler struct {
	projectService service.ProjectService
	logger         *zap.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService service.ProjectService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		logger:         logger,
	}
}

// ListProjects returns all projects, newest first, each carrying the
// summaries of its linked departments
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// GetProject returns one project by slug with its full related departments
func (h *ProjectHandler) GetProject(c *gin.Context) {
	slug := c.Param("slug")

	project, err := h.projectService.GetProject(c.Request.Context(), slug)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// CreateProject creates a new project and links it to the supplied
// departments
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// UpdateProject applies a partial update; when department ids are supplied
// the project's links are replaced in full
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	slug := c.Param("slug")

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), slug, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject deletes the project with the given slug and its join rows
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	slug := c.Param("slug")

	if err := h.projectService.DeleteProject(c.Request.Context(), slug); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
