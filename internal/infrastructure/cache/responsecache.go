package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"gearshop/internal/shared/logger"
)

// ResponseCache stores rendered response bodies keyed by request path.
// Entries expire on TTL only; writes do not invalidate them.
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, body []byte) error
}

const responseKeyPrefix = "response:"

// RedisResponseCache implements ResponseCache on Redis.
type RedisResponseCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewRedisResponseCache(client *redis.Client, ttl time.Duration, logger logger.Interface) *RedisResponseCache {
	return &RedisResponseCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisResponseCache) key(key string) string {
	return responseKeyPrefix + key
}

func (c *RedisResponseCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	body, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get cached response: %w", err)
	}
	return body, true, nil
}

func (c *RedisResponseCache) Set(ctx context.Context, key string, body []byte) error {
	if err := c.client.Set(ctx, c.key(key), body, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache response: %w", err)
	}
	return nil
}
