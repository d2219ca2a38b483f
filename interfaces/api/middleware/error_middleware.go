package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"photo-dashboard/pkg/logger"
	"photo-dashboard/pkg/utils"
)

// ErrorHandler answers errors that escaped a handler with the standard envelope
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "An error occurred"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}

		data := map[string]interface{}{
			"status_code": code,
			"path":        c.Path(),
			"method":      c.Method(),
		}
		if code >= fiber.StatusInternalServerError {
			logger.Error(logger.CategoryAPI, "error_handler", "Request error occurred", err, data)
		} else {
			logger.Warn(logger.CategoryAPI, "error_handler", message, data)
		}

		return utils.ErrorResponse(c, code, message, err)
	}
}
