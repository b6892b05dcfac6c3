package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"content-platform-api/internal/dto"
	"content-platform-api/internal/response"
)

func setupMediaRouter(svc *MockMediaService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewMediaHandler(svc, zap.NewNop())
	r := gin.New()
	r.GET("/api/media", h.ListMedia)
	r.POST("/api/media", h.UploadMedia)
	r.DELETE("/api/media/:id", h.DeleteMedia)
	return r
}

func multipartUpload(t *testing.T, fields map[string]string, fileName string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	part, err := writer.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write(fileContent)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestMediaHandler_UploadMedia(t *testing.T) {
	var gotFileName string
	var gotReq *dto.CreateMediaRequest
	var gotBytes []byte
	svc := &MockMediaService{
		UploadMediaFunc: func(ctx context.Context, req *dto.CreateMediaRequest, fileName, contentType string, file io.Reader, author string) (*dto.MediaResponse, error) {
			gotFileName = fileName
			gotReq = req
			gotBytes, _ = io.ReadAll(file)
			return &dto.MediaResponse{ID: 1, Title: req.Title, File: "media/x/" + fileName}, nil
		},
	}
	r := setupMediaRouter(svc)

	body, contentType := multipartUpload(t,
		map[string]string{"title": "Launch photo", "type": "image", "hero": "true"},
		"photo.jpg", []byte("fake image bytes"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/media", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "photo.jpg", gotFileName)
	require.NotNil(t, gotReq)
	assert.Equal(t, "Launch photo", gotReq.Title)
	assert.True(t, gotReq.Hero)
	assert.Equal(t, []byte("fake image bytes"), gotBytes)
}

func TestMediaHandler_UploadMedia_MissingFile(t *testing.T) {
	r := setupMediaRouter(&MockMediaService{})

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("title", "no file"))
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/media", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMediaHandler_UploadMedia_StorageDownIs502(t *testing.T) {
	svc := &MockMediaService{
		UploadMediaFunc: func(ctx context.Context, req *dto.CreateMediaRequest, fileName, contentType string, file io.Reader, author string) (*dto.MediaResponse, error) {
			return nil, response.NewAppError(response.ErrCodeUpstream, "Failed to upload file", "bucket unavailable")
		},
	}
	r := setupMediaRouter(svc)

	body, contentType := multipartUpload(t, nil, "photo.jpg", []byte("x"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/media", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestMediaHandler_ListMedia(t *testing.T) {
	svc := &MockMediaService{
		ListMediaFunc: func(ctx context.Context) ([]*dto.MediaResponse, error) {
			return []*dto.MediaResponse{{ID: 1, Title: "photo"}}, nil
		},
	}
	r := setupMediaRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/media", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []dto.MediaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
}

func TestMediaHandler_DeleteMedia(t *testing.T) {
	var deletedID uint
	svc := &MockMediaService{
		DeleteMediaFunc: func(ctx context.Context, id uint) error {
			deletedID = id
			return nil
		},
	}
	r := setupMediaRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/media/42", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, uint(42), deletedID)
}

func TestMediaHandler_DeleteMedia_InvalidID(t *testing.T) {
	r := setupMediaRouter(&MockMediaService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/media/not-a-number", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
