package routes

import (
	"github.com/gofiber/fiber/v2"

	"photo-dashboard/domain/services"
	"photo-dashboard/interfaces/api/handlers"
	"photo-dashboard/interfaces/api/middleware"
	websocketHandler "photo-dashboard/interfaces/api/websocket"
	"photo-dashboard/pkg/config"
)

func SetupRoutes(
	app *fiber.App,
	h *handlers.Handlers,
	health *handlers.HealthHandler,
	ws *websocketHandler.WebSocketHandler,
	sessions services.SessionService,
	cfg *config.Config,
) {
	SetupHealthRoutes(app, health)
	SetupMetricsRoutes(app)

	// API version group
	api := app.Group("/api/v1")
	SetupLogRoutes(api, h, cfg.Admin.Token)

	// Everything below runs against the tab's session
	dashboard := api.Group("", middleware.RateLimiter(&cfg.RateLimit), middleware.Session(sessions))
	SetupSessionRoutes(dashboard, h)
	SetupSearchRoutes(dashboard, h)
	SetupPeopleRoutes(dashboard, h)
	SetupDatasetRoutes(dashboard, h)

	// WebSocket routes need the app, not the api group
	SetupWebSocketRoutes(app, ws)
}
