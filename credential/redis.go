package credential

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Address  string
	Password string
	DB       int
	// Key overrides DefaultKey, letting several clients share one server.
	Key string
}

// RedisStore keeps the credential in Redis so that several processes see
// the same key.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	key := cfg.Key
	if key == "" {
		key = DefaultKey
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &RedisStore{client: client, key: key}, nil
}

func (s *RedisStore) Get(ctx context.Context) (string, bool, error) {
	v, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}

	if err != nil {
		return "", false, fmt.Errorf("failed to read credential: %w", err)
	}

	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, apiKey string) error {
	if err := s.client.Set(ctx, s.key, apiKey, 0).Err(); err != nil {
		return fmt.Errorf("failed to write credential: %w", err)
	}

	return nil
}

func (s *RedisStore) Remove(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("failed to remove credential: %w", err)
	}

	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
