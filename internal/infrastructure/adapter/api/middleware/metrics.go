package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// HTTPMetrics records request level metrics
type HTTPMetrics interface {
	RequestStarted() func()
	ObserveRequest(method, route, status int, duration time.Duration)
}

// Metrics records in-flight requests, counts and latency per matched route
func Metrics(metrics HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		done := metrics.RequestStarted()
		start := time.Now()

		c.Next()

		done()
		metrics.ObserveRequest(
			c.Request.Method,
			c.FullPath(),
			c.Writer.Status(),
			time.Since(start),
		)
	}
}
