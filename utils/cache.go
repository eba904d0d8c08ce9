// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"homely/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the generic cache client (calendar and quote caching).
var CacheClient *redis.Client

// InitRedis initializes the Redis cache client using AppConfig.
func InitRedis() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitRedis()
	}
	return CacheClient
}
