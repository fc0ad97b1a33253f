package rediscache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// scheduleTTL bounds how long a computed schedule stays cached. Keys are
// content-addressed, so expiry only trades a recompute for memory.
const scheduleTTL = 24 * time.Hour

// ScheduleCache stores serialized amortization schedules in Redis,
// keyed by a hash of the loan terms and ledger contents.
type ScheduleCache struct {
	client *redis.Client
	ctx    context.Context
}

// NewScheduleCache creates a Redis-backed schedule cache
func NewScheduleCache(addr string) *ScheduleCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &ScheduleCache{
		client: rdb,
		ctx:    context.Background(),
	}
}

// Ping verifies the Redis connection
func (c *ScheduleCache) Ping() error {
	return c.client.Ping(c.ctx).Err()
}

// Get retrieves a cached schedule by key
func (c *ScheduleCache) Get(key string) (string, bool) {
	val, err := c.client.Get(c.ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Str("key", key).Msg("Schedule cache read failed")
		}
		return "", false
	}
	return val, true
}

// Set stores a serialized schedule under key
func (c *ScheduleCache) Set(key string, value string) error {
	return c.client.Set(c.ctx, key, value, scheduleTTL).Err()
}

// Close closes the underlying Redis client
func (c *ScheduleCache) Close() error {
	return c.client.Close()
}
