package mocks

import (
	"context"

	"github.com/Chandra-006/User-Management/domain"
)

// MockUserCache implements domain.UserCache interface for testing
type MockUserCache struct {
	GetFunc        func(ctx context.Context, id uint) (*domain.User, error)
	SetFunc        func(ctx context.Context, user *domain.User) error
	InvalidateFunc func(ctx context.Context, id uint) error
}

// NewMockUserCache creates a new MockUserCache with default behaviors
func NewMockUserCache() *MockUserCache {
	return &MockUserCache{}
}

// Get returns a cached user
func (m *MockUserCache) Get(ctx context.Context, id uint) (*domain.User, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	// Default behavior: miss
	return nil, domain.ErrCacheMiss
}

// Set stores a user in the cache
func (m *MockUserCache) Set(ctx context.Context, user *domain.User) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

// Invalidate drops a cached user
func (m *MockUserCache) Invalidate(ctx context.Context, id uint) error {
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.UserCache = (*MockUserCache)(nil)
