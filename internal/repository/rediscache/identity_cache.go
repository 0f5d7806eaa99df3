package rediscache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/logger"
	pkgredis "go-jobboard-backend/pkg/redis"

	"github.com/redis/go-redis/v9"
)

// identityCache stores session user profiles in Redis keyed by role and id.
// The cache is advisory; callers fall back to the database when Redis is down
// or the key is missing.
type identityCache struct {
	ttl time.Duration
}

func NewIdentityCache(ttl time.Duration) domain.IdentityCache {
	return &identityCache{ttl: ttl}
}

func cacheKey(role domain.Role, userID string) string {
	return fmt.Sprintf("user:%s:%s", role, userID)
}

// Get returns (nil, nil) on a cache miss or when Redis is unavailable.
func (c *identityCache) Get(ctx context.Context, role domain.Role, userID string) (*domain.User, error) {
	if !pkgredis.IsAvailable() {
		return nil, nil
	}

	data, err := pkgredis.Client().Get(ctx, cacheKey(role, userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		logger.Log.Warn("identity cache read failed", "error", err)
		return nil, nil
	}

	var user domain.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		logger.Log.Warn("identity cache entry corrupt, dropping", "key", cacheKey(role, userID))
		pkgredis.Client().Del(ctx, cacheKey(role, userID))
		return nil, nil
	}
	return &user, nil
}

func (c *identityCache) Set(ctx context.Context, user *domain.User) error {
	if !pkgredis.IsAvailable() {
		return nil
	}

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := pkgredis.Client().Set(ctx, cacheKey(user.Role, user.ID), data, c.ttl).Err(); err != nil {
		logger.Log.Warn("identity cache write failed", "error", err)
	}
	return nil
}

func (c *identityCache) Invalidate(ctx context.Context, role domain.Role, userID string) error {
	if !pkgredis.IsAvailable() {
		return nil
	}
	if err := pkgredis.Client().Del(ctx, cacheKey(role, userID)).Err(); err != nil {
		logger.Log.Warn("identity cache invalidation failed", "error", err)
	}
	return nil
}
