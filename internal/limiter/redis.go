package limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a throttle backed by SET NX with an expiry.
type Redis struct {
	client redis.Cmdable
	prefix string
	window time.Duration
}

// NewRedis returns a throttle storing keys under prefix.
func NewRedis(client redis.Cmdable, prefix string, window time.Duration) *Redis {
	return &Redis{client: client, prefix: prefix, window: windowOrDefault(window)}
}

// Acquire sets the key only if absent; redis expires it after the window.
func (l *Redis) Acquire(ctx context.Context, key string) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.prefix+key, "1", l.window).Result()
	if err != nil {
		return false, fmt.Errorf("acquire %s: %w", key, err)
	}
	return ok, nil
}

// Dial parses url and pings the server.
func Dial(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}
