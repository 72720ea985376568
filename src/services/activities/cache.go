package activities

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"
)

const listCacheKey = "activities:list"

// Cache holds the encoded GET /activities body. A nil client disables it.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) enabled() bool {
	return c != nil && c.client != nil && c.ttl > 0
}

func (c *Cache) Get(ctx context.Context) ([]byte, bool) {
	if !c.enabled() {
		return nil, false
	}
	data, err := c.client.Get(ctx, listCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warnw("⚠️ activities cache read failed", "error", err)
		}
		return nil, false
	}
	return data, true
}

func (c *Cache) Set(ctx context.Context, data []byte) {
	if !c.enabled() {
		return
	}
	if err := c.client.Set(ctx, listCacheKey, data, c.ttl).Err(); err != nil {
		log.Warnw("⚠️ activities cache write failed", "error", err)
	}
}

// Invalidate drops the cached list after a roster change.
func (c *Cache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, listCacheKey).Err(); err != nil {
		log.Warnw("⚠️ activities cache invalidate failed", "error", err)
	}
}
