package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/colisgo/colisgo/internal/pkg/constants"
	"github.com/colisgo/colisgo/internal/pkg/database"
	"github.com/colisgo/colisgo/internal/pkg/logger"
	"github.com/colisgo/colisgo/internal/pkg/models"
	"github.com/colisgo/colisgo/internal/utils"
)

// RateLimiter is a fixed-window limiter backed by Redis counters
type RateLimiter struct {
	redis *database.RedisClient
	cfg   models.RateLimitConfig
}

// NewRateLimiter creates a rate limiter middleware factory
func NewRateLimiter(redisClient *database.RedisClient, cfg models.RateLimitConfig) *RateLimiter {
	return &RateLimiter{redis: redisClient, cfg: cfg}
}

// Limit returns middleware that caps requests per client IP for the named
// resource. Redis failures fail open: limiting is best-effort protection,
// not a correctness guarantee.
func (rl *RateLimiter) Limit(resource string) echo.MiddlewareFunc {
	window := time.Duration(rl.cfg.WindowSeconds) * time.Second
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := fmt.Sprintf(constants.KeyRateLimit, resource, c.RealIP())
			ctx := c.Request().Context()

			count, err := rl.redis.Incr(ctx, key)
			if err != nil {
				logger.Warn("Rate limiter unavailable, allowing request",
					logger.String("resource", resource),
					logger.Err(err))
				return next(c)
			}
			if count == 1 {
				if err := rl.redis.Expire(ctx, key, window); err != nil {
					logger.Warn("Failed to set rate limit window",
						logger.String("resource", resource),
						logger.Err(err))
				}
			}

			if count > int64(rl.cfg.Requests) {
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Too many requests")
			}

			return next(c)
		}
	}
}
