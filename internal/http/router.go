package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/Chandra-006/User-Management/domain"
	"github.com/Chandra-006/User-Management/internal/http/handlers"
	"github.com/Chandra-006/User-Management/internal/http/middleware"
)

// BuildRouter wires the HTTP surface: public auth routes, the auth-gated
// user resource, and static serving of uploaded profile images.
func BuildRouter(ah *handlers.AuthHandlers, uh *handlers.UserHandlers, tokenSvc domain.TokenService, uploadDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.Static("/uploads", uploadDir)

	auth := r.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)
	auth.POST("/refresh", ah.Refresh)

	users := r.Group("/users", middleware.RequireAuth(tokenSvc))
	users.GET("/:id", uh.Get)

	admin := users.Group("", middleware.RequireAdminRole())
	admin.GET("", uh.List)
	admin.PUT("/:id", uh.Update)
	admin.DELETE("/:id", uh.Delete)

	return r
}
