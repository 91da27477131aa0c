package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Chandra-006/User-Management/domain"
)

// UserCacheImpl implements domain.UserCache using Redis. It is a
// read-through cache for get-by-id lookups; every mutation of a user record
// must invalidate its entry.
type UserCacheImpl struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewUserCache creates a new user cache
func NewUserCache(client *redis.Client, ttl time.Duration) domain.UserCache {
	return &UserCacheImpl{
		client: client,
		prefix: "user:",
		ttl:    ttl,
	}
}

func (c *UserCacheImpl) key(id uint) string {
	return fmt.Sprintf("%s%d", c.prefix, id)
}

// Get implements domain.UserCache
func (c *UserCacheImpl) Get(ctx context.Context, id uint) (*domain.User, error) {
	data, err := c.client.Get(ctx, c.key(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrCacheMiss
		}
		return nil, err
	}

	var user domain.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		// Corrupt entry: drop it and fall back to the database.
		c.client.Del(ctx, c.key(id))
		return nil, domain.ErrCacheMiss
	}
	return &user, nil
}

// Set implements domain.UserCache
func (c *UserCacheImpl) Set(ctx context.Context, user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}
	return c.client.Set(ctx, c.key(user.ID), data, c.ttl).Err()
}

// Invalidate implements domain.UserCache
func (c *UserCacheImpl) Invalidate(ctx context.Context, id uint) error {
	return c.client.Del(ctx, c.key(id)).Err()
}
