package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/shelter_dispatch_system/internal/models"
)

const zonesCacheKey = "zones:all"

// ZoneCache хранит список зон; Get возвращает nil, nil при промахе
type ZoneCache interface {
	Get(ctx context.Context) ([]*models.AlertZone, error)
	Set(ctx context.Context, zones []*models.AlertZone) error
	Invalidate(ctx context.Context) error
}

type RedisZoneCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRedisZoneCache(client *redis.Client, ttl time.Duration) *RedisZoneCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisZoneCache{redisClient: client, ttl: ttl}
}

func (c *RedisZoneCache) Get(ctx context.Context) ([]*models.AlertZone, error) {
	val, err := c.redisClient.Get(ctx, zonesCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get zones from cache: %w", err)
	}
	zones := make([]*models.AlertZone, 0)
	if err := json.Unmarshal(val, &zones); err != nil {
		return nil, fmt.Errorf("failed to unmarshal zones from cache: %w", err)
	}
	return zones, nil
}

func (c *RedisZoneCache) Set(ctx context.Context, zones []*models.AlertZone) error {
	val, err := json.Marshal(zones)
	if err != nil {
		return fmt.Errorf("failed to marshal zones for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, zonesCacheKey, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set zones in cache: %w", err)
	}
	return nil
}

func (c *RedisZoneCache) Invalidate(ctx context.Context) error {
	if err := c.redisClient.Del(ctx, zonesCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate zones cache: %w", err)
	}
	return nil
}
