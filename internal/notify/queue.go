package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	queueKey = "shelter_notifications"
)

// Queue - очередь исходящих уведомлений
type Queue interface {
	Push(ctx context.Context, payload []byte) error
	// Pop возвращает nil, nil, если за timeout событий не появилось
	Pop(ctx context.Context, timeout time.Duration) ([]byte, error)
}

// RedisQueue - очередь на основе списка Redis
type RedisQueue struct {
	redisClient *redis.Client
	key         string
}

// NewRedisQueue создает очередь в стандартном ключе
func NewRedisQueue(client *redis.Client) *RedisQueue {
	return &RedisQueue{redisClient: client, key: queueKey}
}

// Push добавляет событие в левую часть списка
func (q *RedisQueue) Push(ctx context.Context, payload []byte) error {
	if err := q.redisClient.LPush(ctx, q.key, payload).Err(); err != nil {
		return fmt.Errorf("failed to push notification to Redis: %w", err)
	}
	return nil
}

// Pop блокирующе извлекает событие из правой части списка
func (q *RedisQueue) Pop(ctx context.Context, timeout time.Duration) ([]byte, error) {
	result, err := q.redisClient.BRPop(ctx, timeout, q.key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to pop notification from Redis: %w", err)
	}
	// result[0] - ключ, result[1] - значение
	return []byte(result[1]), nil
}
