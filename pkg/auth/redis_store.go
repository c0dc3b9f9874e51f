package auth

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisTokenStore keeps valid tokens in Redis so that a token issued by one
// instance is honored by every other. It is selected at startup when a
// Redis URL is configured.
type RedisTokenStore struct {
	client *redis.Client
}

// NewRedisTokenStore connects to Redis and verifies connectivity.
func NewRedisTokenStore(ctx context.Context, redisURL string) (*RedisTokenStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisTokenStore{client: client}, nil
}

var _ TokenStore = (*RedisTokenStore)(nil)

// Close closes the Redis connection.
func (s *RedisTokenStore) Close() error {
	return s.client.Close()
}

func tokenKey(token string) string {
	return "token:" + token
}

func (s *RedisTokenStore) Issue(ctx context.Context) (string, error) {
	token, err := GenerateToken()
	if err != nil {
		return "", err
	}
	// No TTL: tokens stay valid until explicitly revoked.
	if err := s.client.Set(ctx, tokenKey(token), "1", 0).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisTokenStore) Revoke(ctx context.Context, token string) error {
	return s.client.Del(ctx, tokenKey(token)).Err()
}

func (s *RedisTokenStore) IsValid(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, tokenKey(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
