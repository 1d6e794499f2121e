package routecache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store - хранилище значений кэша
type Store interface {
	// MGet возвращает значения в порядке ключей; отсутствующие ключи дают nil
	MGet(ctx context.Context, keys []string) ([][]byte, error)
	Get(ctx context.Context, key string) ([]byte, error)
	SetMany(ctx context.Context, entries map[string][]byte, ttl time.Duration) error
}

type RedisStore struct {
	redisClient *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{redisClient: client}
}

func (s *RedisStore) MGet(ctx context.Context, keys []string) ([][]byte, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	vals, err := s.redisClient.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to mget route cache: %w", err)
	}
	out := make([][]byte, len(keys))
	for i, v := range vals {
		if str, ok := v.(string); ok {
			out[i] = []byte(str)
		}
	}
	return out, nil
}

// Get возвращает nil, nil при отсутствии ключа
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get route cache: %w", err)
	}
	return val, nil
}

func (s *RedisStore) SetMany(ctx context.Context, entries map[string][]byte, ttl time.Duration) error {
	if len(entries) == 0 {
		return nil
	}
	pipe := s.redisClient.Pipeline()
	for key, val := range entries {
		pipe.Set(ctx, key, val, ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set route cache: %w", err)
	}
	return nil
}
