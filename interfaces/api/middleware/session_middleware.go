package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"photo-dashboard/domain/services"
	"photo-dashboard/pkg/logger"
	"photo-dashboard/pkg/utils"
)

// Session attaches the tab's session to the request. A missing or expired id starts a fresh
// session; the id in effect is always echoed back in the response header.
func Session(sessions services.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		var session services.Session
		if raw := c.Get(utils.SessionHeader); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid session id", err)
			}

			session, err = sessions.Get(ctx, id)
			if err != nil && !errors.Is(err, services.ErrSessionNotFound) {
				logger.SessionError("attach", "Failed to load session", err, map[string]interface{}{
					"session_id": raw,
				})
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load session", err)
			}
			if session == nil {
				logger.SessionWarn("attach", "Unknown session id, starting a new session", map[string]interface{}{
					"session_id": raw,
				})
			}
		}

		if session == nil {
			created, err := sessions.Create(ctx)
			if err != nil {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create session", err)
			}
			session = created
		}

		c.Set(utils.SessionHeader, session.ID().String())
		utils.SetSessionInContext(c, session)
		return c.Next()
	}
}
