package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/fincheck/backend/internal/domain/error"
	"github.com/fincheck/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed attempts per window.
	defaultMaxAttempts = 5
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute
)

// RateLimiter provides IP-based rate limiting backed by Redis using a
// fixed window counter. Sharing the counters through Redis keeps the limit
// consistent across replicas.
type RateLimiter struct {
	client         *redis.Client
	logger         *slog.Logger
	maxAttempts    int
	windowDuration time.Duration
}

// NewRateLimiter creates a new rate limiter with default settings.
func NewRateLimiter(client *redis.Client, logger *slog.Logger) *RateLimiter {
	return NewRateLimiterWithConfig(client, logger, defaultMaxAttempts, defaultWindowDuration)
}

// NewRateLimiterWithConfig creates a new rate limiter with custom settings.
func NewRateLimiterWithConfig(client *redis.Client, logger *slog.Logger, maxAttempts int, windowDuration time.Duration) *RateLimiter {
	return &RateLimiter{
		client:         client,
		logger:         logger,
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
// Redis failures let the request through; availability wins over limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		allowed, err := rl.allow(c, clientIP)
		if err != nil {
			rl.logger.Warn("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}
		if !allowed {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// allow increments the counter for the given key and reports whether the
// request is within the limit.
func (rl *RateLimiter) allow(c *gin.Context, key string) (bool, error) {
	ctx := c.Request.Context()
	redisKey := fmt.Sprintf("ratelimit:signin:%s", key)

	count, err := rl.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := rl.client.Expire(ctx, redisKey, rl.windowDuration).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(rl.maxAttempts), nil
}
