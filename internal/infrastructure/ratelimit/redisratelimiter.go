package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter answers whether a caller identified by key may proceed.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Remaining(ctx context.Context, key string) (int64, error)
	Reset(ctx context.Context, key string) error
}

// RedisRateLimiter implements a fixed-window counter in Redis.
type RedisRateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func NewRedisRateLimiter(client *redis.Client, limit int, window time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

// Allow increments the caller's counter for the current window and
// reports whether the limit has been reached.
func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := l.getKey(key)

	pipe := l.client.Pipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, l.window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to execute pipeline: %w", err)
	}

	return incr.Val() <= int64(l.limit), nil
}

func (l *RedisRateLimiter) Remaining(ctx context.Context, key string) (int64, error) {
	count, err := l.client.Get(ctx, l.getKey(key)).Int64()
	if err == redis.Nil {
		return int64(l.limit), nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get counter: %w", err)
	}

	remaining := int64(l.limit) - count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.getKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to reset counter: %w", err)
	}
	return nil
}

func (l *RedisRateLimiter) getKey(identifier string) string {
	return fmt.Sprintf("ratelimit:%s", identifier)
}
