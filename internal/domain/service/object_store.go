package service

import (
	"context"
	"io"
)

// ObjectStore abstracts the blob storage backing file uploads.
type ObjectStore interface {
	// EnsureBucket creates the backing bucket when it does not exist yet.
	// Called once at startup.
	EnsureBucket(ctx context.Context) error

	// Upload stores the object under key and returns no identifier; the key
	// is chosen by the caller.
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error

	// Download fetches an object; the caller closes the returned reader.
	Download(ctx context.Context, key string) (io.ReadCloser, error)
}
