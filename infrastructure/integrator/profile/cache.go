package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	goredis "github.com/redis/go-redis/v9"
	"github.com/vfg2006/creator-pitch-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const cacheKeyPrefix = "profile:"

type Cache interface {
	Get(ctx context.Context, username string) (*domain.CreatorProfile, error)
	Set(ctx context.Context, profile *domain.CreatorProfile) error
}

type RedisCache struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewRedisCache(client *goredis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Get devolve nil, nil quando o perfil não está em cache
func (c *RedisCache) Get(ctx context.Context, username string) (*domain.CreatorProfile, error) {
	data, err := c.client.Get(ctx, cacheKey(username)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var profile domain.CreatorProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("decode cached profile: %w", err)
	}

	return &profile, nil
}

func (c *RedisCache) Set(ctx context.Context, profile *domain.CreatorProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	if err := c.client.Set(ctx, cacheKey(profile.Username), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

func cacheKey(username string) string {
	return cacheKeyPrefix + strings.ToLower(username)
}
