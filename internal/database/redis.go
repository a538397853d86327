package database

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"campaign-space-api/internal/config"
)

var redisClient *redis.Client

// InitRedis connects to Redis and stores the client for GetRedis.
// A redis:// URL takes precedence over host/port fields.
func InitRedis(cfg config.RedisConfig, log *zap.Logger) error {
	var client *redis.Client

	if cfg.URL != "" {
		opts, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return err
		}
		client = redis.NewClient(opts)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}

	if err := client.Ping(context.Background()).Err(); err != nil {
		return err
	}

	redisClient = client
	log.Info("Redis connection established successfully",
		zap.String("host", cfg.Host),
		zap.Int("db", cfg.DB),
	)
	return nil
}

// GetRedis returns the Redis client, or nil when Redis is not connected.
// Callers must handle nil and fall back to the database path.
func GetRedis() *redis.Client {
	return redisClient
}
