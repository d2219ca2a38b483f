package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	websocketHandler "photo-dashboard/interfaces/api/websocket"
)

func SetupWebSocketRoutes(app *fiber.App, wsHandler *websocketHandler.WebSocketHandler) {
	// Browsers cannot set headers on the upgrade request, so the session also rides in ?session=
	app.Use("/ws", wsHandler.WebSocketUpgrade)
	app.Get("/ws", websocket.New(wsHandler.HandleWebSocket))
}
