package routes

import (
	"github.com/gofiber/fiber/v2"

	"photo-dashboard/interfaces/api/handlers"
)

// SetupSessionRoutes covers the session itself and its query and selection state
func SetupSessionRoutes(router fiber.Router, h *handlers.Handlers) {
	router.Get("/session", h.Session.GetSession)
	router.Delete("/session", h.Session.CloseSession)

	router.Get("/query", h.Query.GetQuery)
	router.Put("/query", h.Query.UpdateQuery)

	selection := router.Group("/selection")
	selection.Get("/", h.Selection.GetSelection)
	selection.Post("/toggle", h.Selection.TogglePerson)
	selection.Delete("/", h.Selection.ClearSelection)
}
