package client

import (
	"context"
	"io"
)

// MockStorageClient is a mock implementation of StorageClientInterface for
// tests.
type MockStorageClient struct {
	GenerateFileKeyFunc func(fileName string) (string, error)
	UploadFileFunc      func(ctx context.Context, key string, file io.Reader, contentType string) (string, error)
	DeleteFileFunc      func(ctx context.Context, key string) error
	GetFileURLFunc      func(key string) string
}

func (m *MockStorageClient) GenerateFileKey(fileName string) (string, error) {
	if m.GenerateFileKeyFunc != nil {
		return m.GenerateFileKeyFunc(fileName)
	}
	return "media/mock/" + fileName, nil
}

func (m *MockStorageClient) UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	if m.UploadFileFunc != nil {
		return m.UploadFileFunc(ctx, key, file, contentType)
	}
	return "https://storage.example.com/" + key, nil
}

func (m *MockStorageClient) DeleteFile(ctx context.Context, key string) error {
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(ctx, key)
	}
	return nil
}

func (m *MockStorageClient) GetFileURL(key string) string {
	if m.GetFileURLFunc != nil {
		return m.GetFileURLFunc(key)
	}
	return "https://storage.example.com/" + key
}
