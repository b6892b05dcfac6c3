package service

import (
	"context"
	"errors"
	"io"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"content-platform-api/internal/domain"
	"content-platform-api/internal/dto"
	"content-platform-api/internal/metrics"
	"content-platform-api/internal/repository"
	"content-platform-api/internal/response"
)

// StorageClient is the capability the media service needs from the object
// storage integration.
type StorageClient interface {
	GenerateFileKey(fileName string) (string, error)
	UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error)
	DeleteFile(ctx context.Context, key string) error
	GetFileURL(key string) string
}

// MediaService defines the interface for media library business logic
type MediaService interface {
	ListMedia(ctx context.Context) ([]*dto.MediaResponse, error)
	UploadMedia(ctx context.Context, req *dto.CreateMediaRequest, fileName, contentType string, file io.Reader, author string) (*dto.MediaResponse, error)
	DeleteMedia(ctx context.Context, id uint) error
}

// mediaServiceImpl is the implementation of MediaService
type mediaServiceImpl struct {
	mediaRepo repository.MediaRepository
	storage   StorageClient
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewMediaService creates a new instance of MediaService
func NewMediaService(mediaRepo repository.MediaRepository, storage StorageClient, m *metrics.Metrics, logger *zap.Logger) MediaService {
	return &mediaServiceImpl{
		mediaRepo: mediaRepo,
		storage:   storage,
		metrics:   m,
		logger:    logger,
	}
}

// ListMedia returns all media items, newest first
func (s *mediaServiceImpl) ListMedia(ctx context.Context) ([]*dto.MediaResponse, error) {
	items, err := s.mediaRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch media", err.Error())
	}

	responses := make([]*dto.MediaResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toMediaResponse(item))
	}
	return responses, nil
}

// UploadMedia stores the file on the external host, then records the item.
// A storage failure or an empty resolved URL aborts the upload before any row
// is written.
func (s *mediaServiceImpl) UploadMedia(ctx context.Context, req *dto.CreateMediaRequest, fileName, contentType string, file io.Reader, author string) (*dto.MediaResponse, error) {
	if s.storage == nil {
		return nil, response.NewAppError(response.ErrCodeUpstream, "Media storage is not configured", "")
	}

	key, err := s.storage.GenerateFileKey(fileName)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeUpstream, "Failed to generate file key", err.Error())
	}

	start := time.Now()
	url, err := s.storage.UploadFile(ctx, key, file, contentType)
	if s.metrics != nil {
		s.metrics.RecordStorageRequest("upload", time.Since(start), err)
	}
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeUpstream, "Failed to upload file", err.Error())
	}
	if url == "" {
		return nil, response.NewAppError(response.ErrCodeUpstream, "Storage returned no URL for uploaded file", "")
	}

	title := req.Title
	if title == "" {
		title = fileName
	}
	mediaType := req.Type
	if mediaType == "" {
		mediaType = domain.MediaTypeImage
	}
	if author == "" {
		author = "anonymous"
	}

	now := time.Now().UTC()
	item := &domain.MediaItem{
		Title:       title,
		Type:        mediaType,
		FileKey:     key,
		URL:         url,
		Body:        req.Body,
		Author:      author,
		Hero:        req.Hero,
		PublishedAt: &now,
	}

	if err := s.mediaRepo.Create(ctx, item); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to record media item", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementMediaUploaded()
	}
	s.logger.Info("Media uploaded",
		zap.Uint("media_id", item.ID),
		zap.String("file_key", key),
	)

	return toMediaResponse(item), nil
}

// DeleteMedia deletes a media item by id. The stored object is intentionally
// left behind; the cleanup of unreferenced objects is not this layer's job.
func (s *mediaServiceImpl) DeleteMedia(ctx context.Context, id uint) error {
	if _, err := s.mediaRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Media item not found")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch media item", err.Error())
	}

	if err := s.mediaRepo.Delete(ctx, id); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete media item", err.Error())
	}
	return nil
}

// toMediaResponse converts domain.MediaItem to dto.MediaResponse
func toMediaResponse(item *domain.MediaItem) *dto.MediaResponse {
	return &dto.MediaResponse{
		ID:          item.ID,
		Title:       item.Title,
		Type:        item.Type,
		File:        item.FileKey,
		URL:         item.URL,
		Body:        item.Body,
		Author:      item.Author,
		Hero:        item.Hero,
		PublishedAt: item.PublishedAt,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
