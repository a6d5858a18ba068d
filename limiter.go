package tourweb

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// newWriteLimiter allows each client IP perMinute admin writes per minute,
// all of which may be spent at once.
func newWriteLimiter(perMinute int) echo.MiddlewareFunc {
	perMinute = max(perMinute, 1)
	return newRateLimit(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
}

func newRateLimit(limit rate.Limit, burst int) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      limit,
		Burst:     burst,
		ExpiresIn: 3 * time.Minute,
	})
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return c.String(http.StatusTooManyRequests, "Too many changes. Try again in a minute.")
		},
	})
}
