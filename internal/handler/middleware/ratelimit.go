package middleware

import (
	"log/slog"
	"net/http"

	"fitbook/internal/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimit limits requests per client IP.
func RateLimit(limiter *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !limiter.Allow(ip) {
			slog.Warn("Rate limit exceeded", "client_ip", ip, "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": gin.H{"message": "Rate limit exceeded. Try again later."},
			})
			return
		}
		c.Next()
	}
}
