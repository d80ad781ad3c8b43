package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"campuskart/pkg/errors"
	"campuskart/pkg/logger"
	"campuskart/pkg/response"
)

// Limiter is the per-user action limiter shared with the use cases.
type Limiter interface {
	Allow(userID, action string) (bool, time.Duration)
}

// IPRateLimit throttles unauthenticated endpoints such as login and register by client IP.
func IPRateLimit(perSecond float64, burst int) echo.MiddlewareFunc {
	store := echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(perSecond),
		Burst:     burst,
		ExpiresIn: 3 * time.Minute,
	})

	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return response.Error(c, errors.Forbidden("Unable to identify client", err))
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			logger.Warn("RATE LIMIT: blocked %s %s from %s", c.Request().Method, c.Path(), identifier)
			wait := time.Duration(float64(time.Second) / perSecond)
			return response.Error(c, errors.TooManyRequests("Too many attempts", wait))
		},
	})
}

// UserRateLimit throttles an authenticated route per user under the given action.
func UserRateLimit(limiter Limiter, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := UIDFrom(c)
			if uid == "" {
				return next(c)
			}

			if allowed, wait := limiter.Allow(uid, action); !allowed {
				logger.Warn("RATE LIMIT: user %s blocked on %s", uid, action)
				return response.Error(c, errors.TooManyRequests("Rate limit exceeded", wait))
			}

			return next(c)
		}
	}
}
