package upload

import (
	"context"
	"strings"
	"testing"

	"pristol/config"
	domainerrors "pristol/internal/domain/errors"
	"pristol/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestUploader(t *testing.T) service.UploadService {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	cfg := &config.Config{
		Storage: &config.StorageConfig{
			PublicBaseURL:  "https://cdn.example.com/",
			MaxUploadBytes: 2 * 1024 * 1024,
		},
	}

	return NewBlobUploader(bucket, cfg)
}

func TestBlobUploader_Upload(t *testing.T) {
	uploader := newTestUploader(t)

	payload := "fake-png-bytes"
	result, err := uploader.Upload(context.Background(), &service.UploadInput{
		Filename:    "photo.PNG",
		ContentType: "image/png",
		Size:        int64(len(payload)),
		Body:        strings.NewReader(payload),
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.NotEmpty(t, result.PublicID)
	assert.True(t, strings.HasSuffix(result.PublicID, ".png"), "key keeps the lowercased extension")
	assert.Equal(t, "https://cdn.example.com/"+result.PublicID, result.SecureURL)
}

func TestBlobUploader_Upload_RejectsNonImage(t *testing.T) {
	uploader := newTestUploader(t)

	_, err := uploader.Upload(context.Background(), &service.UploadInput{
		Filename:    "notes.pdf",
		ContentType: "application/pdf",
		Size:        10,
		Body:        strings.NewReader("0123456789"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUploadNotImage)
}

func TestBlobUploader_Upload_RejectsOversized(t *testing.T) {
	uploader := newTestUploader(t)

	_, err := uploader.Upload(context.Background(), &service.UploadInput{
		Filename:    "huge.jpg",
		ContentType: "image/jpeg",
		Size:        3 * 1024 * 1024,
		Body:        strings.NewReader("irrelevant"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUploadTooLarge)
}

func TestBlobUploader_Upload_NoExtension(t *testing.T) {
	uploader := newTestUploader(t)

	result, err := uploader.Upload(context.Background(), &service.UploadInput{
		Filename:    "camera-capture",
		ContentType: "image/webp",
		Size:        4,
		Body:        strings.NewReader("webp"),
	})
	require.NoError(t, err)
	assert.NotContains(t, result.PublicID, ".")
}
