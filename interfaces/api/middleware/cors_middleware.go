package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"photo-dashboard/pkg/utils"
)

// CorsMiddleware exposes the session header so browser clients can read it back
func CorsMiddleware(origins string) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:  "Origin, Content-Type, Accept, X-Admin-Token, " + utils.SessionHeader,
		ExposeHeaders: utils.SessionHeader,
	})
}
