package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Options - параметры подключения к Redis
type Options struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
}

// NewRedisClient создает и возвращает новый клиент Redis.
// Клиент общий для кэша маршрутов, кэша зон и очереди уведомлений.
func NewRedisClient(ctx context.Context, opts Options) (*redis.Client, error) {
	if opts.PoolSize <= 0 {
		opts.PoolSize = 10
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
		PoolSize: opts.PoolSize,
	})

	// Проверяем соединение с Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", opts.Addr, err)
	}

	return rdb, nil
}
