package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"content-platform-api/internal/dto"
	"content-platform-api/internal/response"
	"content-platform-api/internal/service"
)

// DepartmentHandler handles department HTTP requests
type DepartmentHandler struct {
	departmentService service.DepartmentService
	logger            *zap.Logger
}

// NewDepartmentHandler creates a new DepartmentHandler
func NewDepartmentHandler(departmentService service.DepartmentService, logger *zap.Logger) *DepartmentHandler {
	return &DepartmentHandler{
		departmentService: departmentService,
		logger:            logger,
	}
}

// ListDepartments returns all departments with their derived statistics.
// Unpublished departments are hidden unless include_unpublished=true.
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	includeUnpublished := c.Query("include_unpublished") == "true"

	departments, err := h.departmentService.ListDepartments(c.Request.Context(), includeUnpublished)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, departments)
}

// GetDepartment returns one department by slug with statistics and its
// linked project summaries
func (h *DepartmentHandler) GetDepartment(c *gin.Context) {
	slug := c.Param("slug")

	department, err := h.departmentService.GetDepartment(c.Request.Context(), slug)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, department)
}

// CreateDepartment creates a new department
func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	department, err := h.departmentService.CreateDepartment(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, department)
}

// UpdateDepartment applies a partial update to the department with the given
// slug. Only supplied fields change.
func (h *DepartmentHandler) UpdateDepartment(c *gin.Context) {
	slug := c.Param("slug")

	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	department, err := h.departmentService.UpdateDepartment(c.Request.Context(), slug, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, department)
}

// DeleteDepartment deletes the department with the given slug
func (h *DepartmentHandler) DeleteDepartment(c *gin.Context) {
	slug := c.Param("slug")

	if err := h.departmentService.DeleteDepartment(c.Request.Context(), slug); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
