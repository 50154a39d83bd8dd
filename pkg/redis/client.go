// Package redis builds the client backing token revocation.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/frahmantamala/crms/internal"
	"github.com/redis/go-redis/v9"
)

const pingTimeout = 3 * time.Second

// NewClient connects and pings. The caller owns Close.
func NewClient(ctx context.Context, cfg internal.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := internal.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", cfg.Addr, err)
	}
	return client, nil
}
