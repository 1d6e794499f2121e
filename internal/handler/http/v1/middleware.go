package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/shelter_dispatch_system/internal/metrics"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware ограничивает частоту запросов общим token bucket
func RateLimitMiddleware(rps float64, burst int) gin.HandlerFunc {
	if burst <= 0 {
		burst = int(rps)
		if burst < 1 {
			burst = 1
		}
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}

// MetricsMiddleware считает запросы по шаблону маршрута и коду ответа
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
