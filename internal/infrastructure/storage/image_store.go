package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/Chandra-006/User-Management/domain"
)

// DiskImageStore implements domain.ImageStore on the local filesystem.
// Saved images get a uuid-derived name and are returned as a relative
// uploads/ path so the router can serve them statically.
type DiskImageStore struct {
	dir     string
	maxSize int64
}

// NewDiskImageStore creates the upload directory if needed.
func NewDiskImageStore(dir string, maxSize int64) (*DiskImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &DiskImageStore{dir: dir, maxSize: maxSize}, nil
}

var allowedImageTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
}

// Save implements domain.ImageStore
func (s *DiskImageStore) Save(ctx context.Context, filename, contentType string, r io.Reader, size int64) (string, error) {
	fallbackExt, ok := allowedImageTypes[contentType]
	if !ok {
		return "", domain.ErrInvalidImageType
	}
	if size > s.maxSize {
		return "", domain.ErrImageTooLarge
	}

	ext := filepath.Ext(filename)
	if ext == "" {
		ext = fallbackExt
	}
	name := uuid.NewString() + ext
	dst := filepath.Join(s.dir, name)

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer f.Close()

	// Guard against a lying Content-Length: never write past the cap.
	written, err := io.Copy(f, io.LimitReader(r, s.maxSize+1))
	if err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("failed to write image file: %w", err)
	}
	if written > s.maxSize {
		os.Remove(dst)
		return "", domain.ErrImageTooLarge
	}

	return "uploads/" + name, nil
}
