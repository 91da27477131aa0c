package domain

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Role is the closed set of user roles. Keeping it a dedicated type (instead
// of a free-form string) makes invalid roles unrepresentable past the parse
// boundary.
type Role uint8

const (
	RoleUser Role = iota
	RoleAdmin
)

// ParseRole converts the wire/storage representation into a Role.
func ParseRole(s string) (Role, error) {
	switch s {
	case "user":
		return RoleUser, nil
	case "admin":
		return RoleAdmin, nil
	}
	return RoleUser, fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

func (r Role) String() string {
	if r == RoleAdmin {
		return "admin"
	}
	return "user"
}

// MarshalText implements encoding.TextMarshaler so roles serialize as
// "user"/"admin" in JSON responses.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Value implements driver.Valuer for database persistence.
func (r Role) Value() (driver.Value, error) {
	return r.String(), nil
}

// Scan implements sql.Scanner.
func (r *Role) Scan(src any) error {
	switch v := src.(type) {
	case string:
		parsed, err := ParseRole(v)
		if err != nil {
			return err
		}
		*r = parsed
		return nil
	case []byte:
		parsed, err := ParseRole(string(v))
		if err != nil {
			return err
		}
		*r = parsed
		return nil
	}
	return fmt.Errorf("%w: unsupported type %T", ErrInvalidRole, src)
}

// User represents a user record. Email and phone are globally unique.
// RefreshToken holds the single active session token (empty when no session
// exists); it is the sole revocation mechanism.
type User struct {
	ID           uint
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	ProfileImage string
	Address      string
	State        string
	City         string
	Country      string
	Pincode      string
	Role         Role
	RefreshToken string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RegisterInput carries the fields accepted on self-registration. Role is
// deliberately absent: no registration path grants admin.
type RegisterInput struct {
	Name         string
	Email        string
	Phone        string
	Password     string
	Address      string
	State        string
	City         string
	Country      string
	Pincode      string
	ProfileImage string
}

// UserUpdate carries a partial update; nil fields are left untouched.
// Password is re-hashed only when it meets the minimum-length policy. Role
// changes go through here and nowhere else: registration never grants one.
type UserUpdate struct {
	Name         *string
	Email        *string
	Phone        *string
	Password     *string
	Address      *string
	State        *string
	City         *string
	Country      *string
	Pincode      *string
	ProfileImage *string
	Role         *Role
}

// AuthResult represents a successful login or refresh outcome.
type AuthResult struct {
	User         *User
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenClaims represents the decoded payload of a signed bearer token.
type TokenClaims struct {
	UserID    uint
	Role      Role
	IssuedAt  int64
	ExpiresAt int64
}

// MinPasswordLength is the policy floor for plaintext passwords, both on
// registration and on admin update.
const MinPasswordLength = 6
