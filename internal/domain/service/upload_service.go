package service

import (
	"context"
	"io"

	"pristol/internal/domain/entity"
)

// UploadInput describes an incoming image upload.
type UploadInput struct {
	Filename    string    // Original filename, used only for its extension.
	ContentType string    // MIME type as declared by the client.
	Size        int64     // Declared size in bytes.
	Body        io.Reader // Image payload.
}

// UploadService stores product images in the public bucket. Validation
// (image MIME type, size limit) happens before any remote write.
type UploadService interface {
	Upload(ctx context.Context, input *UploadInput) (*entity.Upload, error)
}
