package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"photo-dashboard/pkg/config"
	"photo-dashboard/pkg/utils"
)

// RateLimiter limits requests per session, falling back to the client IP for requests that
// do not carry a session id yet
func RateLimiter(cfg *config.RateLimitConfig) fiber.Handler {
	if !cfg.Enabled {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	return limiter.New(limiter.Config{
		Max:        cfg.Max,
		Expiration: cfg.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if id := c.Get(utils.SessionHeader); id != "" {
				return "session:" + id
			}
			return "ip:" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(utils.Response{
				Success: false,
				Message: "Too many requests. Please try again later.",
				Error:   "RATE_LIMIT_EXCEEDED",
			})
		},
	})
}
