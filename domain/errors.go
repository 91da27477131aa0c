package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrPhoneTaken         = errors.New("phone already registered")
	ErrDuplicateIdentity  = errors.New("email or phone already registered")
)

// Token errors
var (
	ErrTokenInvalid        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token has expired")
	ErrTokenMalformed      = errors.New("malformed token")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

// Resource errors
var (
	ErrSelfDeletion = errors.New("cannot delete own account")
	ErrInvalidRole  = errors.New("invalid role")
	ErrCacheMiss    = errors.New("cache miss")
)

// Upload errors
var (
	ErrInvalidImageType = errors.New("invalid file type")
	ErrImageTooLarge    = errors.New("file too large")
)
