package utils

import (
	"context"
	"log"
	"time"

	"github.com/blue9kamrul/SkillBridge-backend/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient serves short-lived application caches such as the
	// featured-tutors listing.
	CacheClient *redis.Client
	// AuthCacheClient holds live session records keyed by token hash.
	AuthCacheClient *redis.Client
)

// newRedisClient connects to the configured redis instance on the given DB
// and fails fast when it is unreachable.
func newRedisClient(db int, purpose string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", purpose, err)
	}
	return client
}

// InitCache initializes the generic application cache client.
func InitCache() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "cache")
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitAuthCache initializes the session-store client.
func InitAuthCache() {
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB, "auth")
}

// GetAuthCacheClient returns the session-store client.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}
