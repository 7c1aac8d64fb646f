package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"room-reservation/internal/handler/httperr"
	"room-reservation/internal/pkg/config"
	"room-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const rateLimitTimeout = 200 * time.Millisecond

var errRateLimited = errs.New("rate limit exceeded")

// RateLimit allows cfg.RateLimit requests per caller in each cfg.RateWindow,
// counted in redis. Callers are keyed by user id, or client IP before auth.
// A nil client or a redis failure lets the request through.
func RateLimit(client *redis.Client, cfg config.RedisConfig) gin.HandlerFunc {
	if client == nil || cfg.RateLimit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	window := cfg.RateWindow
	if window <= 0 {
		window = time.Minute
	}

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), rateLimitTimeout)
		defer cancel()

		key := rateLimitKey(c, cfg.RateKeyPrefix, window)
		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			GetLogger(c).Warn("rate limit check failed, allowing request", "error", err)
			c.Next()
			return
		}
		if count == 1 {
			if err := client.Expire(ctx, key, window).Err(); err != nil {
				GetLogger(c).Warn("failed to set rate limit expiry", "error", err)
			}
		}

		remaining := int64(cfg.RateLimit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.RateLimit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(cfg.RateLimit) {
			retryAfter := window
			if ttl, ttlErr := client.TTL(ctx, key).Result(); ttlErr == nil && ttl > 0 {
				retryAfter = ttl
			}
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Round(time.Second).Seconds())))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", nil)
			return
		}
		c.Next()
	}
}

func rateLimitKey(c *gin.Context, prefix string, window time.Duration) string {
	caller := "ip:" + c.ClientIP()
	if id, ok := GetUserID(c); ok {
		caller = "user:" + id.String()
	}
	secs := int64(window / time.Second)
	if secs < 1 {
		secs = 1
	}
	bucket := time.Now().Unix() / secs
	return fmt.Sprintf("%s:%s:%d", prefix, caller, bucket)
}
