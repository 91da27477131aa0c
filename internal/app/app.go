package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Chandra-006/User-Management/internal/config"
	httpx "github.com/Chandra-006/User-Management/internal/http"
	"github.com/Chandra-006/User-Management/internal/http/handlers"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	authH := handlers.NewAuthHandlers(c.AuthSvc, c.ImageStore)
	userH := handlers.NewUserHandlers(c.UserSvc, c.ImageStore)

	r := httpx.BuildRouter(authH, userH, c.TokenSvc, cfg.UploadDir)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
