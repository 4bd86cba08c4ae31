package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Connect initializes a Redis client from URL or host:port input.
// Supporting both formats keeps local/dev and container config paths simple.
func Connect(_ context.Context, redisURL string) (*redis.Client, error) {
	if strings.HasPrefix(redisURL, "redis://") {
		opt, parseErr := redis.ParseURL(redisURL)
		if parseErr != nil {
			return nil, fmt.Errorf("parse redis url: %w", parseErr)
		}
		return redis.NewClient(opt), nil
	}
	return redis.NewClient(&redis.Options{Addr: redisURL}), nil
}

// RedisRateWindowStore implements fixed-window counters in Redis so quota
// accounting is shared across instances. INCR plus EXPIRE NX in one pipeline
// makes the check-and-increment atomic and pins the window to the first
// request; the key TTL is the time remaining until reset.
type RedisRateWindowStore struct {
	client *redis.Client
}

// NewRedisRateWindowStore creates a window store backed by Redis counters.
func NewRedisRateWindowStore(client *redis.Client) *RedisRateWindowStore {
	return &RedisRateWindowStore{client: client}
}

func (s *RedisRateWindowStore) Increment(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	redisKey := "ratelimit:" + key

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, window)
	ttl := pipe.TTL(ctx, redisKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, err
	}

	resetIn := ttl.Val()
	if resetIn < 0 {
		resetIn = window
	}
	return incr.Val(), resetIn, nil
}
