package httpserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"weddinghub/internal/handler"
	"weddinghub/internal/util"
	"weddinghub/pkg/metrics"
	"weddinghub/pkg/ratelimit"
)

// AdminAuthMiddleware gates the admin surface on the session cookie.
func AdminAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(handler.AdminCookieName)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		if err := util.ParseAdminToken(token, jwtSecret); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// MetricsMiddleware records request durations labelled by route pattern.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequestDuration(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}

// RateLimitMiddleware applies a per-IP fixed window to an endpoint.
func RateLimitMiddleware(limiter *ratelimit.Limiter, endpoint string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := ratelimit.FormatKey(endpoint, c.ClientIP())
		if !limiter.Allow(c.Request.Context(), key) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			c.Abort()
			return
		}
		c.Next()
	}
}
