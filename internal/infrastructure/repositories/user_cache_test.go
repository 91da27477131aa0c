package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chandra-006/User-Management/domain"
)

func setupTestCache(t *testing.T) (domain.UserCache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewUserCache(client, 5*time.Minute), mr
}

func TestUserCacheImpl_SetAndGet(t *testing.T) {
	cache, _ := setupTestCache(t)
	ctx := context.Background()

	user := &domain.User{
		ID:    12,
		Name:  "Cached User",
		Email: "cached@example.com",
		Role:  domain.RoleAdmin,
	}
	require.NoError(t, cache.Set(ctx, user))

	got, err := cache.Get(ctx, 12)
	require.NoError(t, err)
	assert.Equal(t, "cached@example.com", got.Email)
	assert.Equal(t, domain.RoleAdmin, got.Role)
}

func TestUserCacheImpl_Miss(t *testing.T) {
	cache, _ := setupTestCache(t)

	_, err := cache.Get(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestUserCacheImpl_Invalidate(t *testing.T) {
	cache, _ := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, &domain.User{ID: 3, Email: "x@example.com"}))
	require.NoError(t, cache.Invalidate(ctx, 3))

	_, err := cache.Get(ctx, 3)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestUserCacheImpl_CorruptEntry(t *testing.T) {
	cache, mr := setupTestCache(t)
	ctx := context.Background()

	mr.Set("user:7", "{not json")

	_, err := cache.Get(ctx, 7)
	require.ErrorIs(t, err, domain.ErrCacheMiss)

	// The corrupt entry must have been dropped.
	assert.False(t, mr.Exists("user:7"), "expected corrupt entry to be deleted")
}

func TestUserCacheImpl_EntriesExpire(t *testing.T) {
	cache, mr := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, &domain.User{ID: 9, Email: "ttl@example.com"}))

	mr.FastForward(6 * time.Minute)

	_, err := cache.Get(ctx, 9)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}
