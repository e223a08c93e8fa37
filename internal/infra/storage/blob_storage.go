// Package storage persists uploaded images through a gocloud.dev blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"nightmap/config"
	"nightmap/internal/domain/lifecycle"
	"nightmap/internal/domain/service"
	"nightmap/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Drivers are selected at runtime by the bucket URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// blobStorage implements service.BlobStorage on top of a gocloud.dev bucket.
type blobStorage struct {
	bucket    *blob.Bucket
	urlPrefix string
	logger    *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and ties its lifetime to the application.
func New(params Params) (service.BlobStorage, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket URL is not configured")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open blob bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:    bucket,
		urlPrefix: strings.TrimSuffix(params.Config.Storage.URLPrefix, "/"),
		logger:    params.Logger,
	}, nil
}

// Store writes the object under the given key and returns its public URL.
func (s *blobStorage) Store(ctx context.Context, key, contentType string, data io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := io.Copy(writer, data); err != nil {
		// Best effort close; the copy error is the one worth reporting.
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write blob")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize blob")
	}

	return s.URL(key), nil
}

// URL resolves an object key to its public URL.
func (s *blobStorage) URL(key string) string {
	return s.urlPrefix + "/" + key
}
