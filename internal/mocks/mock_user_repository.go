package mocks

import (
	"context"

	"github.com/Chandra-006/User-Management/domain"
)

// MockUserRepository implements domain.UserRepository interface for testing
type MockUserRepository struct {
	CreateFunc             func(ctx context.Context, user *domain.User) error
	FindByIDFunc           func(ctx context.Context, id uint) (*domain.User, error)
	FindByEmailFunc        func(ctx context.Context, email string) (*domain.User, error)
	FindByPhoneFunc        func(ctx context.Context, phone string) (*domain.User, error)
	FindByIdentifierFunc   func(ctx context.Context, identifier string) (*domain.User, error)
	SearchFunc             func(ctx context.Context, query string) ([]*domain.User, error)
	UpdateFunc             func(ctx context.Context, user *domain.User) error
	SetRefreshTokenFunc    func(ctx context.Context, userID uint, token string) error
	RotateRefreshTokenFunc func(ctx context.Context, userID uint, current, next string) error
	DeleteFunc             func(ctx context.Context, id uint) error
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

// FindByID finds a user by ID
func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByEmail finds a user by email
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByPhone finds a user by phone number
func (m *MockUserRepository) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	if m.FindByPhoneFunc != nil {
		return m.FindByPhoneFunc(ctx, phone)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByIdentifier finds a user by email or phone
func (m *MockUserRepository) FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	if m.FindByIdentifierFunc != nil {
		return m.FindByIdentifierFunc(ctx, identifier)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// Search returns users matching the query
func (m *MockUserRepository) Search(ctx context.Context, query string) ([]*domain.User, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	// Default behavior: no matches
	return []*domain.User{}, nil
}

// Update updates an existing user
func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

// SetRefreshToken replaces the stored refresh token
func (m *MockUserRepository) SetRefreshToken(ctx context.Context, userID uint, token string) error {
	if m.SetRefreshTokenFunc != nil {
		return m.SetRefreshTokenFunc(ctx, userID, token)
	}
	// Default behavior: success
	return nil
}

// RotateRefreshToken conditionally swaps the stored refresh token
func (m *MockUserRepository) RotateRefreshToken(ctx context.Context, userID uint, current, next string) error {
	if m.RotateRefreshTokenFunc != nil {
		return m.RotateRefreshTokenFunc(ctx, userID, current, next)
	}
	// Default behavior: success
	return nil
}

// Delete removes a user
func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)
