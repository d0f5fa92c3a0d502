package server

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// AdminWriteRateLimit throttles admin mutations per client IP. Reads
// pass through untouched; when no limiter is configured the whole
// middleware is a no-op.
func (s *Server) AdminWriteRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.adminLimiter.Enabled() {
			c.Next()
			return
		}
		switch c.Request.Method {
		case "GET", "HEAD", "OPTIONS":
			c.Next()
			return
		}

		result, err := s.adminLimiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			// Redis being down should not take admin writes with it.
			c.Next()
			return
		}
		if !result.Allowed {
			if result.RetryAfter > 0 {
				c.Header("Retry-After", strconv.Itoa(int(result.RetryAfter.Seconds())+1))
			}
			AbortWithError(c, ErrTooManyRequests)
			return
		}
		c.Next()
	}
}
