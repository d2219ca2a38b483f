package handlers

import (
	"github.com/gofiber/fiber/v2"

	"photo-dashboard/domain/dto"
	"photo-dashboard/domain/repositories"
	"photo-dashboard/domain/services"
	"photo-dashboard/pkg/logger"
	"photo-dashboard/pkg/utils"
)

type SessionHandler struct {
	sessions    services.SessionService
	connections ConnectionRegistry
	media       repositories.MediaLocator
}

func NewSessionHandler(sessions services.SessionService, connections ConnectionRegistry, media repositories.MediaLocator) *SessionHandler {
	return &SessionHandler{sessions: sessions, connections: connections, media: media}
}

// GetSession returns the tab's session state
// @Router /api/v1/session [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	session, err := sessionOrError(c)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, "Session retrieved", dto.SessionToResponse(session, h.media))
}

// CloseSession drops the session, its stored snapshot and its websocket connections
// @Router /api/v1/session [delete]
func (h *SessionHandler) CloseSession(c *fiber.Ctx) error {
	session, err := sessionOrError(c)
	if err != nil {
		return err
	}
	if err := h.sessions.Close(c.UserContext(), session.ID()); err != nil {
		return respondError(c, "Failed to close session", err)
	}
	if h.connections != nil {
		h.connections.DisconnectSession(session.ID())
	}
	c.Response().Header.Del(utils.SessionHeader)
	return utils.SuccessResponse(c, "Session closed", nil)
}

// persist stores the session's filter state. A failed write only costs restart survival,
// so it is logged and the request still succeeds.
func persist(c *fiber.Ctx, sessions services.SessionService, session services.Session) {
	if err := sessions.Save(c.UserContext(), session); err != nil {
		logger.SessionWarn("persist", "Session snapshot not saved", map[string]interface{}{
			"session_id": session.ID().String(),
			"error":      err.Error(),
		})
	}
}
