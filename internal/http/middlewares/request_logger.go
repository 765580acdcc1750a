package middleware

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
)

func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			log.Printf(
				"HTTP %s %s completed with status %d in %dms",
				c.Request().Method,
				c.Request().URL.Path,
				c.Response().Status,
				time.Since(start).Milliseconds(),
			)

			return nil
		}
	}
}
