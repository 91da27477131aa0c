package mocks

import (
	"context"
	"io"

	"github.com/Chandra-006/User-Management/domain"
)

// MockImageStore implements domain.ImageStore interface for testing
type MockImageStore struct {
	SaveFunc func(ctx context.Context, filename, contentType string, r io.Reader, size int64) (string, error)
}

// NewMockImageStore creates a new MockImageStore with default behaviors
func NewMockImageStore() *MockImageStore {
	return &MockImageStore{}
}

// Save stores an uploaded image and returns its relative path
func (m *MockImageStore) Save(ctx context.Context, filename, contentType string, r io.Reader, size int64) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, filename, contentType, r, size)
	}
	// Default behavior: pretend the image was stored
	return "uploads/mock-image.jpg", nil
}

// Compile-time interface compliance verification
var _ domain.ImageStore = (*MockImageStore)(nil)
