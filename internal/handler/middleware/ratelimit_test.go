//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"room-reservation/internal/handler/middleware"
	"room-reservation/internal/pkg/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRateLimitedRouter(client *redis.Client, limit int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimit(client, config.RedisConfig{
		RateLimit:     limit,
		RateWindow:    time.Hour,
		RateKeyPrefix: "rl-test",
	}))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func doPing(r http.Handler) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit(t *testing.T) {
	t.Run("rejects requests over the limit with Retry-After", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })
		r := newRateLimitedRouter(client, 2)

		assert.Equal(t, http.StatusNoContent, doPing(r).Code)
		assert.Equal(t, http.StatusNoContent, doPing(r).Code)

		w := doPing(r)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
		assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
		assert.Contains(t, w.Body.String(), "Too many requests")
	})

	t.Run("sets an expiry on the counter", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })
		r := newRateLimitedRouter(client, 5)

		require.Equal(t, http.StatusNoContent, doPing(r).Code)

		keys := mr.Keys()
		require.Len(t, keys, 1)
		assert.Greater(t, mr.TTL(keys[0]), time.Duration(0))
	})

	t.Run("fails open when redis is down", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
		t.Cleanup(func() { _ = client.Close() })
		r := newRateLimitedRouter(client, 1)
		mr.Close()

		assert.Equal(t, http.StatusNoContent, doPing(r).Code)
		assert.Equal(t, http.StatusNoContent, doPing(r).Code)
	})

	t.Run("nil client disables limiting", func(t *testing.T) {
		r := newRateLimitedRouter(nil, 1)
		for i := 0; i < 3; i++ {
			assert.Equal(t, http.StatusNoContent, doPing(r).Code)
		}
	})
}
