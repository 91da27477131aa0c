package mocks

import (
	"context"

	"github.com/Chandra-006/User-Management/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RegisterFunc func(ctx context.Context, in domain.RegisterInput) (*domain.User, error)
	LoginFunc    func(ctx context.Context, identifier, password string) (*domain.AuthResult, error)
	RefreshFunc  func(ctx context.Context, refreshToken string) (*domain.AuthResult, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register registers a new user
func (m *MockAuthService) Register(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, in)
	}
	// Default behavior: echo the input as a stored user
	return &domain.User{
		ID:           1,
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		ProfileImage: in.ProfileImage,
		Address:      in.Address,
		State:        in.State,
		City:         in.City,
		Country:      in.Country,
		Pincode:      in.Pincode,
		Role:         domain.RoleUser,
	}, nil
}

// Login authenticates a user
func (m *MockAuthService) Login(ctx context.Context, identifier, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, identifier, password)
	}
	// Default behavior: reject
	return nil, domain.ErrInvalidCredentials
}

// Refresh rotates a refresh token
func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, refreshToken)
	}
	// Default behavior: reject
	return nil, domain.ErrInvalidRefreshToken
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
