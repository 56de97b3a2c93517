package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kritsada-dev/tickethub/internal/config"
)

const keyPrefix = "tickethub:event-card:"

// NewRedisClient creates a Redis client from configuration
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})
}

// SummaryCache stores rendered event cards (inventory summary + status) in
// Redis with a short TTL. It is a read-through cache: misses and Redis
// failures both mean "recompute", never "fail the request".
type SummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSummaryCache creates a SummaryCache with the given TTL
func NewSummaryCache(client *redis.Client, ttl time.Duration) *SummaryCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &SummaryCache{client: client, ttl: ttl}
}

// Get returns the cached payload for an event. The second return value
// reports whether the key was present.
func (c *SummaryCache) Get(ctx context.Context, eventID string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, keyPrefix+eventID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return payload, true, nil
}

// Set stores the payload for an event with the configured TTL
func (c *SummaryCache) Set(ctx context.Context, eventID string, payload []byte) error {
	return c.client.Set(ctx, keyPrefix+eventID, payload, c.ttl).Err()
}

// Invalidate removes a cached event card
func (c *SummaryCache) Invalidate(ctx context.Context, eventID string) error {
	return c.client.Del(ctx, keyPrefix+eventID).Err()
}
