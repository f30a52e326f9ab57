// Package statscache caches computed plot statistics in Redis.
//
// Statistics are derived, never authoritative, so the cache is best-effort:
// services log and ignore cache failures.
package statscache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"kleingarten/internal/plot/models"
	id "kleingarten/pkg/domain"
)

const keyPrefix = "plots:stats:"

// RedisCache stores statistics snapshots with a TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New constructs a Redis-backed statistics cache.
func New(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func key(districtID *id.DistrictID) string {
	if districtID == nil {
		return keyPrefix + "all"
	}
	return keyPrefix + districtID.String()
}

// Get returns the cached snapshot for the scope, or (nil, nil) on a miss.
func (c *RedisCache) Get(ctx context.Context, districtID *id.DistrictID) (*models.PlotStatistics, error) {
	payload, err := c.client.Get(ctx, key(districtID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var stats models.PlotStatistics
	if err := json.Unmarshal(payload, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Set stores a snapshot for the scope.
func (c *RedisCache) Set(ctx context.Context, districtID *id.DistrictID, stats *models.PlotStatistics) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key(districtID), payload, c.ttl).Err()
}

// Invalidate drops the cached snapshots affected by a mutation in the given
// district.
func (c *RedisCache) Invalidate(ctx context.Context, districtID id.DistrictID) error {
	return c.client.Del(ctx, keyPrefix+"all", keyPrefix+districtID.String()).Err()
}
