package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Chandra-006/User-Management/domain"
)

// AuthHandlers handles registration, login and token refresh.
type AuthHandlers struct {
	authSvc    domain.AuthService
	imageStore domain.ImageStore
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, imageStore domain.ImageStore) *AuthHandlers {
	return &AuthHandlers{
		authSvc:    authSvc,
		imageStore: imageStore,
	}
}

// RegisterRequest represents the multipart registration form
type RegisterRequest struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Phone    string `form:"phone" binding:"required"`
	Password string `form:"password" binding:"required"`
	Address  string `form:"address"`
	State    string `form:"state" binding:"required"`
	City     string `form:"city" binding:"required"`
	Country  string `form:"country" binding:"required"`
	Pincode  string `form:"pincode"`
}

// LoginRequest represents a login request; the identifier is an email or a
// phone number.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// RefreshRequest represents a token refresh request
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

func (req *RegisterRequest) validate() string {
	if msg := validateName(req.Name); msg != "" {
		return msg
	}
	if msg := validatePhone(req.Phone); msg != "" {
		return msg
	}
	if msg := validatePassword(req.Password); msg != "" {
		return msg
	}
	if msg := validateAddress(req.Address); msg != "" {
		return msg
	}
	if msg := validatePincode(req.Pincode); msg != "" {
		return msg
	}
	return ""
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": msg})
		return
	}

	imagePath, ok := saveProfileImage(c, h.imageStore)
	if !ok {
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), domain.RegisterInput{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Password:     req.Password,
		Address:      req.Address,
		State:        req.State,
		City:         req.City,
		Country:      req.Country,
		Pincode:      req.Pincode,
		ProfileImage: imagePath,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered"})
		case errors.Is(err, domain.ErrPhoneTaken):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Phone already registered"})
		case errors.Is(err, domain.ErrDuplicateIdentity):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email or phone already registered"})
		default:
			log.Printf("register failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered",
		"user": gin.H{
			"id":            user.ID,
			"name":          user.Name,
			"email":         user.Email,
			"phone":         user.Phone,
			"profile_image": user.ProfileImage,
		},
	})
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
			return
		}
		log.Printf("login failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"accessToken":  result.AccessToken,
		"refreshToken": result.RefreshToken,
		"expiresIn":    result.ExpiresIn,
		"user": gin.H{
			"id":            result.User.ID,
			"name":          result.User.Name,
			"email":         result.User.Email,
			"phone":         result.User.Phone,
			"role":          result.User.Role,
			"profile_image": result.User.ProfileImage,
		},
	})
}

// Refresh handles token refresh with single-use rotation.
func (h *AuthHandlers) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Refresh token is required"})
		return
	}

	result, err := h.authSvc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRefreshToken) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired refresh token"})
			return
		}
		log.Printf("refresh failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"accessToken":  result.AccessToken,
		"refreshToken": result.RefreshToken,
		"expiresIn":    result.ExpiresIn,
	})
}
