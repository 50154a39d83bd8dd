package auth

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "crms:revoked:"

type RedisRevocationStore struct {
	client *redis.Client
}

func NewRedisRevocationStore(client *redis.Client) *RedisRevocationStore {
	return &RedisRevocationStore{client: client}
}

func (s *RedisRevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, revokedKeyPrefix+tokenID, 1, ttl).Err()
}

func (s *RedisRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := s.client.Get(ctx, revokedKeyPrefix+tokenID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// NoopRevocationStore is used when Redis is disabled: logout is then
// client-side only and tokens stay valid until they expire.
type NoopRevocationStore struct{}

func (NoopRevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return nil
}

func (NoopRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return false, nil
}
