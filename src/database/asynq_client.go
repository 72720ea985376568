package database

import (
	"github.com/gofiber/fiber/v2/log"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

// AsynqRedisOpt converts the shared redis options into the asynq connection option.
func AsynqRedisOpt(opt *redis.Options) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Network:   opt.Network,
		Addr:      opt.Addr,
		Username:  opt.Username,
		Password:  opt.Password,
		DB:        opt.DB,
		TLSConfig: opt.TLSConfig,
	}
}

// InitAsynq initializes Asynq client only if Redis is available
func InitAsynq(redisClient *redis.Client) *asynq.Client {
	if redisClient == nil {
		log.Warn("⚠️ Redis not available. Asynq client will not be initialized.")
		return nil
	}

	client := asynq.NewClient(AsynqRedisOpt(redisClient.Options()))
	log.Info("✅ Asynq Client initialized successfully")
	return client
}
