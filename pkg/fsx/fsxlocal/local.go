package fsxlocal

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/Abraxas-365/insightshub/pkg/fsx"
)

// LocalFileSystem implements fsx.FileSystem on the local disk, rooted at baseDir
type LocalFileSystem struct {
	baseDir string
}

// NewLocalFileSystem creates a local file system rooted at baseDir.
// An empty baseDir means paths are resolved relative to the working directory.
func NewLocalFileSystem(baseDir string) *LocalFileSystem {
	return &LocalFileSystem{baseDir: baseDir}
}

func (l *LocalFileSystem) resolve(path string) string {
	if l.baseDir == "" {
		return path
	}
	return filepath.Join(l.baseDir, path)
}

func (l *LocalFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(l.resolve(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fsx.ErrNotExist
		}
		return nil, err
	}
	return data, nil
}

func (l *LocalFileSystem) WriteFile(ctx context.Context, path string, data []byte) error {
	full := l.resolve(path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	return os.WriteFile(full, data, 0o644)
}

func (l *LocalFileSystem) DeleteFile(ctx context.Context, path string) error {
	if err := os.Remove(l.resolve(path)); err != nil {
		if os.IsNotExist(err) {
			return fsx.ErrNotExist
		}
		return err
	}
	return nil
}

func (l *LocalFileSystem) ReadFileStream(ctx context.Context, path string) (io.ReadCloser, error) {
	f, err := os.Open(l.resolve(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fsx.ErrNotExist
		}
		return nil, err
	}
	return f, nil
}

func (l *LocalFileSystem) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(l.resolve(path))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (l *LocalFileSystem) Join(parts ...string) string {
	return filepath.Join(parts...)
}
