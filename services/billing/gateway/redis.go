package gateway

import (
	"context"
	"strconv"
	"time"

	"github.com/colisgo/colisgo/internal/pkg/constants"
	"github.com/colisgo/colisgo/internal/pkg/database"
	"github.com/colisgo/colisgo/internal/pkg/logger"
	"github.com/colisgo/colisgo/internal/pkg/models"
)

// CommissionCache caches the commission percentage in Redis. Cache failures
// degrade to registry reads, they are never surfaced to the caller.
type CommissionCache struct {
	redis *database.RedisClient
	ttl   time.Duration
}

// NewCommissionCache creates a commission cache
func NewCommissionCache(redisClient *database.RedisClient, cfg *models.Config) *CommissionCache {
	return &CommissionCache{
		redis: redisClient,
		ttl:   time.Duration(cfg.Billing.CommissionCacheTTLSeconds) * time.Second,
	}
}

// GetPercent returns the cached percentage and whether it was present
func (c *CommissionCache) GetPercent(ctx context.Context) (float64, bool) {
	raw, err := c.redis.Get(ctx, constants.KeyCommissionPercent)
	if err != nil {
		return 0, false
	}
	pct, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		logger.Warn("Discarding malformed cached commission value",
			logger.String("value", raw))
		return 0, false
	}
	return pct, true
}

// SetPercent caches the percentage for the configured TTL
func (c *CommissionCache) SetPercent(ctx context.Context, percent float64) {
	value := strconv.FormatFloat(percent, 'f', -1, 64)
	if err := c.redis.Set(ctx, constants.KeyCommissionPercent, value, c.ttl); err != nil {
		logger.Warn("Failed to cache commission percentage", logger.Err(err))
	}
}

// Invalidate drops the cached percentage after an admin update
func (c *CommissionCache) Invalidate(ctx context.Context) {
	if err := c.redis.Delete(ctx, constants.KeyCommissionPercent); err != nil {
		logger.Warn("Failed to invalidate commission cache", logger.Err(err))
	}
}
