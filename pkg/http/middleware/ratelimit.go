package middleware

import (
	"net/http"

	"TickerBoard/pkg/ratelimit"

	"github.com/labstack/echo/v4"
)

// RateLimit rejects requests with 429 once the caller's bucket is empty.
// Callers are keyed by echo's RealIP.
func RateLimit(l *ratelimit.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !l.Allow(c.RealIP()) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
