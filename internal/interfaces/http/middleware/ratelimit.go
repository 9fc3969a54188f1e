package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rasu25115/pickme/internal/infrastructure/ratelimit"
	"github.com/rasu25115/pickme/internal/shared/utils"
)

// RateLimit throttles requests per client IP. Fails open when the limiter
// backend is unavailable so a Redis outage does not take the admin API down.
func RateLimit(limiter ratelimit.RateLimiter, limits ratelimit.Limits) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.ClientIP(), limits)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
