package ioutils

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/handiism/vidscribe/internal/model"
)

// OpenUpload describes a local file as a model.Upload.
//
// The file is checked once here and opened again on every Upload.Open call.
//
// Returns an error if:
//   - The path does not exist
//   - The path is a directory
func OpenUpload(path string) (*model.Upload, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	return &model.Upload{
		Name: filepath.Base(path),
		Size: info.Size(),
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}, nil
}

// WriteFile writes data to a file, creating parent directories if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing. Nothing is written once ctx is done.
//
// Example:
//
//	err := WriteFile(ctx, "/tmp/thumbs/video.jpg", jpegData)
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
