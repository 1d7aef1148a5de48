// Package storage implements the ObjectStore interface on MinIO.
package storage

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"

	"github.com/AZHIK/africa-soko-backend/config"
	"github.com/AZHIK/africa-soko-backend/internal/domain/service"
)

// minioStore wraps a MinIO client scoped to one bucket.
type minioStore struct {
	client *minio.Client
	bucket string
}

// NewMinioStore builds an ObjectStore from the uploads configuration.
func NewMinioStore(cfg *config.Config) (service.ObjectStore, error) {
	if cfg.Uploads == nil || cfg.Uploads.Endpoint == "" {
		return nil, errors.New("uploads endpoint is required")
	}
	if cfg.Uploads.AccessKey == "" || cfg.Uploads.SecretKey == "" {
		return nil, errors.New("uploads access key and secret key are required")
	}

	client, err := minio.New(cfg.Uploads.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Uploads.AccessKey, cfg.Uploads.SecretKey, ""),
		Secure: cfg.Uploads.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create minio client")
	}

	bucket := cfg.Uploads.Bucket
	if bucket == "" {
		bucket = "soko-uploads"
	}

	return &minioStore{client: client, bucket: bucket}, nil
}

// EnsureBucket creates the bucket if it does not exist yet.
func (s *minioStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return errors.Wrap(err, "failed to check bucket")
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return errors.Wrap(err, "failed to create bucket")
		}
	}

	return nil
}

// Upload stores an object under the given key.
func (s *minioStore) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to upload %s", key)
	}

	return nil
}

// Download opens an object for reading; the caller closes the ReadCloser.
func (s *minioStore) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to download %s", key)
	}

	// GetObject defers errors until the first read; Stat surfaces a missing key now.
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()

		return nil, errors.Wrapf(err, "failed to stat %s", key)
	}

	return obj, nil
}
