package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"
)

// RedisOptions accepts either a redis:// URL or a bare host:port (เช่น localhost:6379).
func RedisOptions(uri string) (*redis.Options, error) {
	if strings.Contains(uri, "://") {
		opt, err := redis.ParseURL(uri)
		if err != nil {
			return nil, fmt.Errorf("parse REDIS_URI: %w", err)
		}
		return opt, nil
	}
	return &redis.Options{Addr: uri}, nil
}

// InitRedis returns nil, nil when uri is empty: callers treat a nil client as
// "Redis not available" and skip caching and jobs.
func InitRedis(ctx context.Context, uri string) (*redis.Client, error) {
	if uri == "" {
		log.Warn("⚠️ Redis not available. Cache and jobs are disabled.")
		return nil, nil
	}

	opt, err := RedisOptions(uri)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("❌ Failed to connect Redis: %w", err)
	}

	log.Info("✅ Redis connected successfully")
	return client, nil
}
