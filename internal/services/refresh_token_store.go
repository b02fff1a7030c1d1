package services

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RefreshTokenStore keeps the single valid refresh token of each account.
// Get returns "" when no token is stored.
type RefreshTokenStore interface {
	Save(ctx context.Context, key, token string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

type redisRefreshTokenStore struct {
	client *redis.Client
}

func NewRedisRefreshTokenStore(client *redis.Client) RefreshTokenStore {
	return &redisRefreshTokenStore{client: client}
}

func (s *redisRefreshTokenStore) Save(ctx context.Context, key, token string, ttl time.Duration) error {
	return s.client.Set(ctx, "refresh:"+key, token, ttl).Err()
}

func (s *redisRefreshTokenStore) Get(ctx context.Context, key string) (string, error) {
	token, err := s.client.Get(ctx, "refresh:"+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return token, err
}

func (s *redisRefreshTokenStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, "refresh:"+key).Err()
}

func refreshKey(role, accountID string) string {
	return role + ":" + accountID
}
