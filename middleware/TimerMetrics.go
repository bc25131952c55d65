package middleware

import (
	"time"

	"user-registry/util"

	"github.com/gofiber/fiber/v2"
)

// TimerMetrics middleware tracks request duration and logs it
func TimerMetrics(c *fiber.Ctx) error {
	startTime := time.Now()

	err := c.Next()

	duration := time.Since(startTime)

	util.Logger.Info().
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", c.Response().StatusCode()).
		Dur("duration", duration).
		Msg("request")

	return err
}
