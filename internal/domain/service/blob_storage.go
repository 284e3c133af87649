package service

import (
	"context"
	"errors"
	"io"
)

// BlobStorage stores uploaded files and exposes them by URL.
type BlobStorage interface {
	// Upload writes data under key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)

	// Open streams a stored object together with its content type.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)

	// Delete removes the object stored under key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// ErrBlobNotFound is returned by Open when no object exists under the key.
var ErrBlobNotFound = errors.New("blob not found")
