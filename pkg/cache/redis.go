package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const connectTimeout = 2 * time.Second

// RedisClient is the connection pool shared by the item cache and the
// health check. A nil *RedisClient means Redis is disabled.
type RedisClient struct {
	rdb *redis.Client
}

// NewRedisClient connects to url and fails unless Redis answers a ping
// within two seconds.
func NewRedisClient(ctx context.Context, url string) (*RedisClient, error) {
	opts, err := clientOptions(url)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis: connect: %w", err)
	}
	return &RedisClient{rdb: rdb}, nil
}

// clientOptions parses url and tunes the pool for request-path reads: a
// slow Redis must fall back to Postgres quickly instead of stalling.
func clientOptions(url string) (*redis.Options, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis: parse url: %w", err)
	}
	opts.PoolSize = 10
	opts.MinIdleConns = 2
	opts.MaxRetries = 1
	opts.DialTimeout = connectTimeout
	opts.ReadTimeout = 500 * time.Millisecond
	opts.WriteTimeout = 500 * time.Millisecond
	opts.PoolTimeout = time.Second
	return opts, nil
}

// Ping implements the health checker.
func (r *RedisClient) Ping(ctx context.Context) error {
	if err := r.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: ping: %w", err)
	}
	return nil
}

// Close is safe on a nil client.
func (r *RedisClient) Close() error {
	if r == nil || r.rdb == nil {
		return nil
	}
	if err := r.rdb.Close(); err != nil {
		return fmt.Errorf("redis: close: %w", err)
	}
	return nil
}
