package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Chandra-006/User-Management/domain"
	"github.com/Chandra-006/User-Management/internal/http/middleware"
)

// UserHandlers handles the CRUD resource layer over user records.
type UserHandlers struct {
	userSvc    domain.UserService
	imageStore domain.ImageStore
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(userSvc domain.UserService, imageStore domain.ImageStore) *UserHandlers {
	return &UserHandlers{
		userSvc:    userSvc,
		imageStore: imageStore,
	}
}

// UpdateUserRequest represents a partial update; absent fields stay nil and
// are left untouched. A short password is deliberately not an error: the
// stored hash is simply kept.
type UpdateUserRequest struct {
	Name     *string `form:"name"`
	Email    *string `form:"email" binding:"omitempty,email"`
	Phone    *string `form:"phone"`
	Password *string `form:"password"`
	Address  *string `form:"address"`
	State    *string `form:"state"`
	City     *string `form:"city"`
	Country  *string `form:"country"`
	Pincode  *string `form:"pincode"`
	Role     *string `form:"role"`
}

func (req *UpdateUserRequest) validate() string {
	if req.Name != nil {
		if msg := validateName(*req.Name); msg != "" {
			return msg
		}
	}
	if req.Phone != nil {
		if msg := validatePhone(*req.Phone); msg != "" {
			return msg
		}
	}
	if req.Address != nil {
		if msg := validateAddress(*req.Address); msg != "" {
			return msg
		}
	}
	if req.Pincode != nil {
		if msg := validatePincode(*req.Pincode); msg != "" {
			return msg
		}
	}
	return ""
}

// userSummary is the sanitized list view: no secret hash, no session token.
func userSummary(u *domain.User) gin.H {
	return gin.H{
		"id":            u.ID,
		"name":          u.Name,
		"email":         u.Email,
		"phone":         u.Phone,
		"profile_image": u.ProfileImage,
		"state":         u.State,
		"city":          u.City,
		"country":       u.Country,
		"pincode":       u.Pincode,
		"role":          u.Role,
		"createdAt":     u.CreatedAt,
	}
}

// userDetail is the sanitized single-record view, including the address.
func userDetail(u *domain.User) gin.H {
	detail := userSummary(u)
	detail["address"] = u.Address
	return detail
}

// List handles GET /users?search= (admin only)
func (h *UserHandlers) List(c *gin.Context) {
	users, err := h.userSvc.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		log.Printf("list users failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	safe := make([]gin.H, 0, len(users))
	for _, u := range users {
		safe = append(safe, userSummary(u))
	}
	c.JSON(http.StatusOK, gin.H{"users": safe})
}

// Get handles GET /users/:id (any authenticated identity)
func (h *UserHandlers) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.userSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		log.Printf("get user failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userDetail(user)})
}

// Update handles PUT /users/:id (admin only)
func (h *UserHandlers) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": msg})
		return
	}

	upd := domain.UserUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Address:  req.Address,
		State:    req.State,
		City:     req.City,
		Country:  req.Country,
		Pincode:  req.Pincode,
	}

	if req.Role != nil {
		role, err := domain.ParseRole(*req.Role)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role"})
			return
		}
		upd.Role = &role
	}

	if imagePath, ok := saveProfileImage(c, h.imageStore); !ok {
		return
	} else if imagePath != "" {
		upd.ProfileImage = &imagePath
	}

	user, err := h.userSvc.Update(c.Request.Context(), id, upd)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		case errors.Is(err, domain.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered"})
		case errors.Is(err, domain.ErrPhoneTaken):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Phone already registered"})
		case errors.Is(err, domain.ErrDuplicateIdentity):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email or phone already registered"})
		default:
			log.Printf("update user failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated", "user": userDetail(user)})
}

// Delete handles DELETE /users/:id (admin only)
func (h *UserHandlers) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}

	if err := h.userSvc.Delete(c.Request.Context(), id, identity.UserID); err != nil {
		switch {
		case errors.Is(err, domain.ErrSelfDeletion):
			c.JSON(http.StatusBadRequest, gin.H{"message": "You cannot delete your own account"})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		default:
			log.Printf("delete user failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return 0, false
	}
	return uint(id), true
}
