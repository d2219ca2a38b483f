package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"photo-dashboard/domain/services"
	"photo-dashboard/pkg/logger"
)

// SessionHeader carries the per-tab session id in both directions
const SessionHeader = "X-Session-ID"

const sessionLocal = "session"

var ErrNoSessionInContext = errors.New("session not found in context")

func SetSessionInContext(c *fiber.Ctx, session services.Session) {
	c.Locals(sessionLocal, session)
}

func GetSessionFromContext(c *fiber.Ctx) (services.Session, error) {
	value := c.Locals(sessionLocal)
	if value == nil {
		return nil, ErrNoSessionInContext
	}

	session, ok := value.(services.Session)
	if !ok {
		logger.Warn(logger.CategoryAPI, "get_session_context", "Invalid session context type", map[string]interface{}{"path": c.Path()})
		return nil, ErrNoSessionInContext
	}
	return session, nil
}
