package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gearshop/internal/infrastructure/ratelimit"
	"gearshop/internal/shared/logger"
	"gearshop/internal/shared/utils"
)

// RateLimit throttles requests per client IP using a fixed-window
// counter. Redis failures fail open so the API stays available.
func RateLimit(limiter ratelimit.RateLimiter, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request",
				"client_ip", c.ClientIP(), "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
