package mocks

import (
	"context"

	"github.com/Chandra-006/User-Management/domain"
)

// MockUserService implements domain.UserService interface for testing
type MockUserService struct {
	ListFunc    func(ctx context.Context, search string) ([]*domain.User, error)
	GetByIDFunc func(ctx context.Context, id uint) (*domain.User, error)
	UpdateFunc  func(ctx context.Context, id uint, upd domain.UserUpdate) (*domain.User, error)
	DeleteFunc  func(ctx context.Context, id, callerID uint) error
}

// NewMockUserService creates a new MockUserService with default behaviors
func NewMockUserService() *MockUserService {
	return &MockUserService{}
}

// List returns users matching the search query
func (m *MockUserService) List(ctx context.Context, search string) ([]*domain.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, search)
	}
	// Default behavior: empty list
	return []*domain.User{}, nil
}

// GetByID returns a user by id
func (m *MockUserService) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// Update applies a partial update
func (m *MockUserService) Update(ctx context.Context, id uint, upd domain.UserUpdate) (*domain.User, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, upd)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// Delete removes a user
func (m *MockUserService) Delete(ctx context.Context, id, callerID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, callerID)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.UserService = (*MockUserService)(nil)
