// Package upload stores product images in a blob bucket and returns
// their public URLs.
package upload

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"pristol/config"
	"pristol/internal/domain/entity"
	domainerrors "pristol/internal/domain/errors"
	"pristol/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
)

// BucketParams holds dependencies for the blob bucket, injected by Fx.
type BucketParams struct {
	fx.In

	Lc  fx.Lifecycle
	Ctx context.Context
	Cfg *config.Config
}

// NewBucket opens the configured blob bucket and closes it on shutdown.
func NewBucket(params BucketParams) (*blob.Bucket, error) {
	if params.Cfg.Storage == nil || params.Cfg.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket URL is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, params.Cfg.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open storage bucket")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return bucket, nil
}

type blobUploader struct {
	bucket   *blob.Bucket
	baseURL  string
	maxBytes int64
}

// NewBlobUploader creates an upload service backed by the given bucket.
func NewBlobUploader(bucket *blob.Bucket, cfg *config.Config) service.UploadService {
	return &blobUploader{
		bucket:   bucket,
		baseURL:  strings.TrimRight(cfg.Storage.PublicBaseURL, "/"),
		maxBytes: cfg.Storage.MaxUploadBytes,
	}
}

// Upload validates the image and writes it to the bucket under a random key.
func (u *blobUploader) Upload(ctx context.Context, input *service.UploadInput) (*entity.Upload, error) {
	if !strings.HasPrefix(input.ContentType, "image/") {
		return nil, domainerrors.ErrUploadNotImage
	}
	if input.Size > u.maxBytes {
		return nil, domainerrors.ErrUploadTooLarge
	}

	key := uuid.New().String() + strings.ToLower(filepath.Ext(input.Filename))

	writer, err := u.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: input.ContentType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open bucket writer")
	}

	// LimitReader guards against clients under-declaring the size.
	if _, err := io.Copy(writer, io.LimitReader(input.Body, u.maxBytes+1)); err != nil {
		_ = writer.Close()
		return nil, errors.Wrap(err, "failed to write image")
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to finalize image write")
	}

	return &entity.Upload{
		SecureURL: u.baseURL + "/" + key,
		PublicID:  key,
	}, nil
}
