package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Chandra-006/User-Management/domain"
	"github.com/Chandra-006/User-Management/internal/config"
	"github.com/Chandra-006/User-Management/internal/infrastructure/auth"
	"github.com/Chandra-006/User-Management/internal/infrastructure/database"
	"github.com/Chandra-006/User-Management/internal/infrastructure/repositories"
	"github.com/Chandra-006/User-Management/internal/infrastructure/storage"
	"github.com/Chandra-006/User-Management/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *redis.Client

	UserRepo   domain.UserRepository
	UserCache  domain.UserCache
	ImageStore domain.ImageStore

	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService
	AuthSvc     domain.AuthService
	UserSvc     domain.UserService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	db, err := database.Open(cfg.DSN)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}
	c.DB = db

	c.RedisClient = database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client

	imageStore, err := storage.NewDiskImageStore(cfg.UploadDir, cfg.MaxUploadBytes)
	if err != nil {
		return nil, err
	}
	c.ImageStore = imageStore

	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.UserCache = repositories.NewUserCache(c.RedisClient, cfg.UserCacheTTL)

	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(
		cfg.JWTAccessSecret,
		cfg.JWTRefreshSecret,
		cfg.JWTIssuer,
		cfg.AccessTTL,
		cfg.RefreshTTL,
	)

	c.AuthSvc = services.NewAuthService(c.UserRepo, c.UserCache, c.PasswordSvc, c.TokenSvc, cfg.AccessTTL)
	c.UserSvc = services.NewUserService(c.UserRepo, c.UserCache, c.PasswordSvc)

	return c, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
