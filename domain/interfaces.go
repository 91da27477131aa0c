package domain

import (
	"context"
	"io"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByPhone(ctx context.Context, phone string) (*User, error)
	// FindByIdentifier looks a user up by email or phone, whichever matches.
	FindByIdentifier(ctx context.Context, identifier string) (*User, error)
	// Search returns users whose name, email, state or city contains the
	// query case-insensitively, newest first. An empty query returns all.
	Search(ctx context.Context, query string) ([]*User, error)
	Update(ctx context.Context, user *User) error
	// SetRefreshToken unconditionally replaces the stored refresh token,
	// revoking any previous session.
	SetRefreshToken(ctx context.Context, userID uint, token string) error
	// RotateRefreshToken swaps current for next only if current is still the
	// stored token. Returns ErrInvalidRefreshToken when the stored token no
	// longer matches, which makes rotation atomic under concurrent refreshes.
	RotateRefreshToken(ctx context.Context, userID uint, current, next string) error
	Delete(ctx context.Context, id uint) error
}

// UserCache defines a read-through cache over user records
type UserCache interface {
	Get(ctx context.Context, id uint) (*User, error)
	Set(ctx context.Context, user *User) error
	Invalidate(ctx context.Context, id uint) error
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines signed bearer token operations. Access and refresh
// tokens are signed with distinct secrets; a token only validates against
// the secret it was issued with.
type TokenService interface {
	GenerateAccessToken(userID uint, role Role) (string, error)
	GenerateRefreshToken(userID uint, role Role) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
	ValidateRefreshToken(token string) (*TokenClaims, error)
}

// ImageStore persists uploaded profile images and returns the relative path
// they are served under.
type ImageStore interface {
	Save(ctx context.Context, filename, contentType string, r io.Reader, size int64) (string, error)
}

// AuthService defines the session/auth flow
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*User, error)
	Login(ctx context.Context, identifier, password string) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
}

// UserService defines the CRUD resource layer over user records
type UserService interface {
	List(ctx context.Context, search string) ([]*User, error)
	GetByID(ctx context.Context, id uint) (*User, error)
	Update(ctx context.Context, id uint, upd UserUpdate) (*User, error)
	// Delete removes the target record; callerID is the authenticated
	// identity and may never equal id.
	Delete(ctx context.Context, id, callerID uint) error
}
