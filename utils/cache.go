// File: utils/cache.go
package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/Immortal-romantic/hotel-booking-api/config"
)

// CacheClient is the generic cache client. It stays nil when no Redis
// address is configured; callers treat a nil client as "no cache".
var CacheClient *redis.Client

// InitCache initializes the Redis cache client when REDIS_ADDR is set.
func InitCache() {
	if config.AppConfig.RedisAddr == "" {
		return
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		GetLogger().Warn("Redis unreachable, running without cache", zap.Error(err))
		return
	}
	CacheClient = client
}

// GetCacheClient returns the cache client, possibly nil.
func GetCacheClient() *redis.Client {
	return CacheClient
}
