// Package cache stores drafted reports in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/domain/entity"
)

const keyPrefix = "report:draft:"

// RedisReportCache implements adapter.ReportCache.
type RedisReportCache struct {
	client *redis.Client
}

// NewRedisReportCache creates a new Redis-backed report cache.
func NewRedisReportCache(client *redis.Client) *RedisReportCache {
	return &RedisReportCache{client: client}
}

// Get returns the cached draft for key.
func (c *RedisReportCache) Get(ctx context.Context, key string) (*entity.ReportDraft, bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached report: %w", err)
	}

	var draft entity.ReportDraft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached report: %w", err)
	}
	return &draft, true, nil
}

// Set stores draft under key for ttl.
func (c *RedisReportCache) Set(ctx context.Context, key string, draft *entity.ReportDraft, ttl time.Duration) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := c.client.Set(ctx, keyPrefix+key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache report: %w", err)
	}
	return nil
}

// Ensure RedisReportCache implements adapter.ReportCache.
var _ adapter.ReportCache = (*RedisReportCache)(nil)
