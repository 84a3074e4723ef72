package store

import (
	"context"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// RedisProvider persists collection blobs in Redis, one string value per
// collection key, no expiry.
type RedisProvider struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedis returns a provider talking to the Redis server at addr.
func NewRedis(addr string) *RedisProvider {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisProvider{
		client: rdb,
		ctx:    context.Background(),
	}
}

// Get reports only a missing key as silently absent. Any other failure is
// logged before being reported as absent: a store opening through a failed
// read would otherwise mistake live data for an empty collection and
// overwrite it on the next mutation.
func (p *RedisProvider) Get(key string) (string, bool) {
	val, err := p.client.Get(p.ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Error("redis read failed, treating key as absent", "key", key, "error", err)
		}
		return "", false
	}
	return val, true
}

func (p *RedisProvider) Set(key, value string) error {
	return p.client.Set(p.ctx, key, value, 0).Err()
}

func (p *RedisProvider) Close() error {
	return p.client.Close()
}
