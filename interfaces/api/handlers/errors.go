package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"photo-dashboard/application/serviceimpl"
	"photo-dashboard/domain/repositories"
	"photo-dashboard/domain/services"
	"photo-dashboard/pkg/utils"
)

// errValidation marks request bodies rejected before reaching a service
var errValidation = errors.New("validation failed")

// statusFor maps domain failures onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, errValidation),
		errors.Is(err, services.ErrNavigationOutOfRange),
		errors.Is(err, services.ErrNoResults),
		errors.Is(err, services.ErrInvalidMerge),
		errors.Is(err, serviceimpl.ErrEmptyFolderPath),
		errors.Is(err, services.ErrInvalidDateRange):
		return fiber.StatusBadRequest
	case errors.Is(err, repositories.ErrNotFound),
		errors.Is(err, services.ErrSessionNotFound),
		errors.Is(err, services.ErrJobNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrStaleResponse):
		return fiber.StatusConflict
	case errors.Is(err, repositories.ErrNetworkFailure), repositories.IsBackendError(err):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, message string, err error) error {
	return utils.ErrorResponse(c, statusFor(err), message, err)
}

// parseBody decodes and validates a JSON request body
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return errors.Join(errValidation, err)
	}
	if err := utils.ValidateStruct(out); err != nil {
		return errors.Join(errValidation, err)
	}
	return nil
}

func sessionOrError(c *fiber.Ctx) (services.Session, error) {
	session, err := utils.GetSessionFromContext(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return session, nil
}
