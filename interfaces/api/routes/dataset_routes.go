package routes

import (
	"github.com/gofiber/fiber/v2"

	"photo-dashboard/interfaces/api/handlers"
)

func SetupDatasetRoutes(router fiber.Router, h *handlers.Handlers) {
	dataset := router.Group("/dataset")

	dataset.Post("/load", h.Dataset.LoadDataset)
	dataset.Get("/jobs/:id", h.Dataset.GetJob)
}
