package middleware

import (
	"time"

	"room-reservation/internal/infra/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request latency by route template, so path parameters do
// not create new series.
func Metrics() gin.HandlerFunc {
	metrics.Register()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTP(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
