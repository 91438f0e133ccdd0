package fsx

import (
	"context"
	"errors"
	"io"
)

// ErrNotExist is returned when the requested path does not exist in the
// backing store. Callers map it to their domain not-found errors.
var ErrNotExist = errors.New("fsx: file does not exist")

// FileReader is the read-only subset used by data loaders
type FileReader interface {
	// ReadFile reads the full contents at path
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// FileSystem abstracts the file store (local disk, S3, ...)
type FileSystem interface {
	FileReader

	// WriteFile writes data at path, creating parents as needed
	WriteFile(ctx context.Context, path string, data []byte) error

	// DeleteFile removes the file at path
	DeleteFile(ctx context.Context, path string) error

	// ReadFileStream opens the file at path for streaming reads
	ReadFileStream(ctx context.Context, path string) (io.ReadCloser, error)

	// Exists reports whether path exists
	Exists(ctx context.Context, path string) (bool, error)

	// Join joins path elements using the store's separator
	Join(parts ...string) string
}
