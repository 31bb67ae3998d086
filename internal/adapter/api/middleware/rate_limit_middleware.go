package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"listed/internal/infrastructure/ratelimit"
	"listed/pkg/errors"
	"listed/pkg/response"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

// NewRateLimitMiddleware caps write rates on abuse-prone endpoints, keyed by
// uid when authenticated and client IP otherwise. Cleanup of idle buckets
// runs for the life of the process.
func NewRateLimitMiddleware(maxTokens, refillRate int, refillTime time.Duration) *RateLimitMiddleware {
	limiter := ratelimit.NewRateLimiter(maxTokens, refillRate, refillTime)

	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			limiter.Cleanup(30 * time.Minute)
		}
	}()

	return &RateLimitMiddleware{limiter: limiter}
}

func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key, ok := c.Get("uid").(string)
		if !ok || key == "" {
			key = c.RealIP()
		}

		if !m.limiter.Allow(key) {
			return response.Error(c, errors.TooManyRequests("Too many requests, slow down"))
		}

		return next(c)
	}
}
