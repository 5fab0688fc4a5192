package config

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient returns nil when no address is configured or the server
// does not answer a ping; callers then run without the response cache.
func NewRedisClient(s *Settings) *redis.Client {
	if s.RedisAddr == "" || !s.CacheEnabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     s.RedisAddr,
		Password: s.RedisPassword,
		DB:       s.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		Log.Warn("redis unavailable, response cache disabled", zap.String("addr", s.RedisAddr), zap.Error(err))
		_ = client.Close()
		return nil
	}
	return client
}
