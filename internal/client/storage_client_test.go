package client

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-platform-api/internal/config"
)

func testStorageConfig() *config.StorageConfig {
	return &config.StorageConfig{
		Bucket:    "test-bucket",
		Region:    "ap-northeast-2",
		Endpoint:  "http://localhost:9000",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
	}
}

func TestNewStorageClient_ValidationErrors(t *testing.T) {
	tests := []struct {
		name        string
		cfg         *config.StorageConfig
		wantErr     bool
		errContains string
	}{
		{
			name:    "Valid MinIO configuration",
			cfg:     testStorageConfig(),
			wantErr: false,
		},
		{
			name: "Valid AWS configuration",
			cfg: &config.StorageConfig{
				Bucket: "test-bucket",
				Region: "ap-northeast-2",
			},
			wantErr: false,
		},
		{
			name: "Missing bucket",
			cfg: &config.StorageConfig{
				Region: "ap-northeast-2",
			},
			wantErr:     true,
			errContains: "bucket is required",
		},
		{
			name: "Missing region",
			cfg: &config.StorageConfig{
				Bucket: "test-bucket",
			},
			wantErr:     true,
			errContains: "region is required",
		},
		{
			name: "Custom endpoint without credentials",
			cfg: &config.StorageConfig{
				Bucket:   "test-bucket",
				Region:   "ap-northeast-2",
				Endpoint: "http://localhost:9000",
			},
			wantErr:     true,
			errContains: "access key and secret key are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewStorageClient(tt.cfg)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				assert.Nil(t, client)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, client)
			}
		})
	}
}

func TestGenerateFileKey(t *testing.T) {
	client, err := NewStorageClient(testStorageConfig())
	require.NoError(t, err)

	key, err := client.GenerateFileKey("Photo.JPG")
	require.NoError(t, err)

	// Key format: media/{year}/{month}/{uuid}_{timestamp}.ext
	parts := strings.Split(key, "/")
	require.Equal(t, 4, len(parts), "Key should have 4 parts separated by /")
	assert.Equal(t, "media", parts[0])
	assert.Equal(t, time.Now().UTC().Format("2006"), parts[1])
	assert.Equal(t, time.Now().UTC().Format("01"), parts[2])

	filename := parts[3]
	assert.True(t, strings.HasSuffix(filename, ".jpg"), "Extension should be lower-cased")
	assert.Contains(t, filename, "_", "Filename should contain underscore separator")
}

func TestGenerateFileKey_NoExtension(t *testing.T) {
	client, err := NewStorageClient(testStorageConfig())
	require.NoError(t, err)

	key, err := client.GenerateFileKey("noextension")
	require.NoError(t, err)
	assert.NotEmpty(t, key)
	assert.False(t, strings.Contains(key, "."), "Key should carry no extension")
}

func TestGenerateFileKey_Uniqueness(t *testing.T) {
	client, err := NewStorageClient(testStorageConfig())
	require.NoError(t, err)

	keys := make(map[string]bool)
	for i := 0; i < 100; i++ {
		key, err := client.GenerateFileKey("photo.jpg")
		require.NoError(t, err)
		assert.False(t, keys[key], "Generated key should be unique")
		keys[key] = true
	}
}

func TestGetFileURL(t *testing.T) {
	awsClient, err := NewStorageClient(&config.StorageConfig{
		Bucket: "test-bucket",
		Region: "ap-northeast-2",
	})
	require.NoError(t, err)

	assert.Equal(t,
		"https://test-bucket.s3.ap-northeast-2.amazonaws.com/media/2026/08/abc.jpg",
		awsClient.GetFileURL("media/2026/08/abc.jpg"))

	minioClient, err := NewStorageClient(testStorageConfig())
	require.NoError(t, err)

	assert.Equal(t,
		"http://localhost:9000/test-bucket/media/2026/08/abc.jpg",
		minioClient.GetFileURL("media/2026/08/abc.jpg"))
}
