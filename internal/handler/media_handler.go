package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"content-platform-api/internal/dto"
	"content-platform-api/internal/middleware"
	"content-platform-api/internal/response"
	"content-platform-api/internal/service"
)

// MediaHandler handles media library HTTP requests
type MediaHandler struct {
	mediaService service.MediaService
	logger       *zap.Logger
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(mediaService service.MediaService, logger *zap.Logger) *MediaHandler {
	return &MediaHandler{
		mediaService: mediaService,
		logger:       logger,
	}
}

// ListMedia returns all media items, newest first
func (h *MediaHandler) ListMedia(c *gin.Context) {
	items, err := h.mediaService.ListMedia(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// UploadMedia accepts a multipart form with a "file" part plus optional
// title/type/body/hero fields, stores the file and records the item
func (h *MediaHandler) UploadMedia(c *gin.Context) {
	var req dto.CreateMediaRequest
	if err := c.ShouldBind(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, "Invalid form fields", err.Error())
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.SendError(c, http.StatusBadRequest, "File is required", err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.SendError(c, http.StatusBadRequest, "Failed to read uploaded file", err.Error())
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	author := middleware.AuthorFromContext(c)

	item, err := h.mediaService.UploadMedia(
		c.Request.Context(), &req, fileHeader.Filename, contentType, file, author)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// DeleteMedia deletes a media item by numeric id
func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.SendError(c, http.StatusBadRequest, "Invalid media ID", "")
		return
	}

	if err := h.mediaService.DeleteMedia(c.Request.Context(), uint(id)); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
