package cache

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/arnizwnd/redis-tugas/internal/pkg/config"
	"github.com/redis/go-redis/v9"
)

// Redis is a Cache shared by every API replica
type Redis struct {
	client redis.UniversalClient
	prefix string

	hits   atomic.Int64
	misses atomic.Int64
}

// NewRedisClient creates a go-redis client from configuration
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		PoolTimeout:  cfg.PoolTimeout,
	})
}

// NewRedis wraps a client. prefix namespaces every key.
func NewRedis(client redis.UniversalClient, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

// Get implements Cache
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		r.misses.Add(1)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}

	r.hits.Add(1)
	return val, true, nil
}

// Set implements Cache
func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Ping implements Cache
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Stats implements Cache
func (r *Redis) Stats() Stats {
	return newStats("redis", 0, r.hits.Load(), r.misses.Load())
}

// Close closes the underlying client
func (r *Redis) Close() error {
	return r.client.Close()
}
