package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Chandra-006/User-Management/domain"
)

// Identity is the authenticated caller attached to a request after the auth
// gate has run. Handlers receive it as one typed value rather than loose
// string keys.
type Identity struct {
	UserID uint
	Role   domain.Role
}

var (
	ErrMissingAuthHeader   = errors.New("authorization header required")
	ErrMalformedAuthHeader = errors.New("invalid authorization header format")
	ErrAdminOnly           = errors.New("admins only")
)

// Authenticate parses a bearer Authorization header and validates the access
// token. It is a plain function returning a result so the checks compose and
// test without a running router.
func Authenticate(tokenSvc domain.TokenService, authHeader string) (Identity, error) {
	if authHeader == "" {
		return Identity{}, ErrMissingAuthHeader
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return Identity{}, ErrMalformedAuthHeader
	}

	claims, err := tokenSvc.ValidateAccessToken(parts[1])
	if err != nil {
		return Identity{}, err
	}

	return Identity{UserID: claims.UserID, Role: claims.Role}, nil
}

// RequireAdmin checks the role of an already-authenticated identity. It must
// only run after Authenticate has succeeded.
func RequireAdmin(id Identity) error {
	if id.Role != domain.RoleAdmin {
		return ErrAdminOnly
	}
	return nil
}

const identityKey = "auth.identity"

// RequireAuth is the gin adapter for Authenticate: 401 on any failure,
// otherwise the Identity is attached for downstream handlers.
func RequireAuth(tokenSvc domain.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := Authenticate(tokenSvc, c.GetHeader("Authorization"))
		if err != nil {
			switch {
			case errors.Is(err, ErrMissingAuthHeader):
				c.JSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			case errors.Is(err, ErrMalformedAuthHeader):
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid authorization header format"})
			case errors.Is(err, domain.ErrTokenExpired):
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			default:
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			}
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireAdminRole is the gin adapter for RequireAdmin; it assumes
// RequireAuth already ran on the route group.
func RequireAdminRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
			c.Abort()
			return
		}

		if err := RequireAdmin(identity); err != nil {
			c.JSON(http.StatusForbidden, gin.H{"message": "Admins only"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// IdentityFrom returns the authenticated identity attached by RequireAuth.
func IdentityFrom(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	identity, ok := v.(Identity)
	return identity, ok
}
