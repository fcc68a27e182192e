package middleware

import (
	"github.com/labstack/echo/v4"

	"campussell/internal/infrastructure/ratelimit"
	"campussell/pkg/errors"
	"campussell/pkg/response"
)

// RateLimit limits authenticated mutations per user and action, e.g. one
// checkout bucket and one inquiry-creation bucket.
func RateLimit(limiter *ratelimit.RateLimiter, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, ok := c.Get("uid").(string)
			if !ok || uid == "" {
				return next(c)
			}

			allowed, _ := limiter.Allow(action + ":" + uid)
			if !allowed {
				return response.Error(c, errors.TooManyRequests("Too many requests, please try again shortly"))
			}

			return next(c)
		}
	}
}
