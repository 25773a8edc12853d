package middleware

import (
	"time"

	"marketbrief/utils/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware observes every request with its route template, so
// /v1/summaries/:id records one series rather than one per id.
func MetricsMiddleware(collector *metrics.Collector) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			collector.RecordRequest(c.Request().Method, path, c.Response().Status, time.Since(start))

			return err
		}
	}
}
