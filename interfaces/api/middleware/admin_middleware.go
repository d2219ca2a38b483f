package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"photo-dashboard/pkg/utils"
)

// AdminToken guards operator endpoints. The token is read from X-Admin-Token or the token
// query parameter; an empty configured token closes the endpoints entirely.
func AdminToken(token string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "Admin endpoints are disabled", nil)
		}

		given := c.Get("X-Admin-Token")
		if given == "" {
			given = c.Query("token")
		}
		if subtle.ConstantTimeCompare([]byte(given), []byte(token)) != 1 {
			return utils.UnauthorizedResponse(c, "Invalid admin token")
		}
		return c.Next()
	}
}
