package routes

import (
	"github.com/gofiber/fiber/v2"

	"photo-dashboard/interfaces/api/handlers"
)

func SetupSearchRoutes(router fiber.Router, h *handlers.Handlers) {
	search := router.Group("/search")

	search.Post("/", h.Search.Search)
	search.Post("/next", h.Search.Next)
	search.Post("/previous", h.Search.Previous)
	search.Get("/results", h.Search.GetResults)
	search.Get("/results/:image_id", h.Search.GetResult)
	search.Put("/sort", h.Search.SetSort)
}
