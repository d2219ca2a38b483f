package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"photo-dashboard/pkg/logger"
	"photo-dashboard/pkg/metrics"
	"photo-dashboard/pkg/utils"
)

// LoggerMiddleware records every request in the api log and the request metrics
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		elapsed := time.Since(start)

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		route := c.Path()
		if r := c.Route(); r != nil && r.Path != "" {
			route = r.Path
		}
		metrics.ObserveHTTPRequest(c.Method(), route, status, elapsed)

		data := map[string]interface{}{
			"method":      c.Method(),
			"path":        c.Path(),
			"status":      status,
			"duration_ms": elapsed.Milliseconds(),
			"ip":          c.IP(),
		}
		if id := string(c.Response().Header.Peek(utils.SessionHeader)); id != "" {
			data["session_id"] = id
		}
		if status >= fiber.StatusInternalServerError {
			logger.Warn(logger.CategoryAPI, "request", "Request failed", data)
		} else {
			logger.API("request", "Request handled", data)
		}
		return err
	}
}
