package websocket

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"photo-dashboard/domain/services"
	websocketManager "photo-dashboard/infrastructure/websocket"
	"photo-dashboard/pkg/logger"
	"photo-dashboard/pkg/utils"
)

const sessionLocal = "ws_session_id"

type WebSocketHandler struct {
	manager  *websocketManager.Manager
	sessions services.SessionService
}

func NewWebSocketHandler(manager *websocketManager.Manager, sessions services.SessionService) *WebSocketHandler {
	return &WebSocketHandler{manager: manager, sessions: sessions}
}

// WebSocketUpgrade admits upgrade requests that name a live session, via the session query
// parameter or the session header
func (h *WebSocketHandler) WebSocketUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	raw := c.Query("session")
	if raw == "" {
		raw = c.Get(utils.SessionHeader)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid session id", err)
	}

	if _, err := h.sessions.Get(c.UserContext(), id); err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Session not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load session", err)
	}

	c.Locals(sessionLocal, id)
	return c.Next()
}

// HandleWebSocket keeps the connection attached to its session until the client goes away.
// The channel is push-only; inbound frames are read just to notice the close.
func (h *WebSocketHandler) HandleWebSocket(c *websocket.Conn) {
	sessionID, _ := c.Locals(sessionLocal).(uuid.UUID)

	h.manager.RegisterClient(c, sessionID)
	defer h.manager.UnregisterClient(c, sessionID)

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.WebSocketError("read_message", "WebSocket read error", err, map[string]interface{}{
					"session_id": sessionID.String(),
				})
			}
			return
		}
	}
}
