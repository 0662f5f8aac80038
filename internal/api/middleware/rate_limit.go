package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/chitresh99/cybersecurity-club-apsit/internal/metrics"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/apperr"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/ratelimit"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/response"
)

// RateLimit rejects requests once a client IP exhausts its sliding window.
// A limiter failure lets the request through; the login endpoint must not
// go down because the limiter store did.
func RateLimit(limiter ratelimit.Limiter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "rate_limit:" + c.ClientIP() + ":" + c.FullPath()

		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			logger.Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}

		if !allowed {
			metrics.RateLimited.Inc()
			response.AbortWith(c, apperr.RateLimited("Too many login attempts. Please try again later."))
			return
		}

		c.Next()
	}
}
