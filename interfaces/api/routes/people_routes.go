package routes

import (
	"github.com/gofiber/fiber/v2"

	"photo-dashboard/interfaces/api/handlers"
)

func SetupPeopleRoutes(router fiber.Router, h *handlers.Handlers) {
	people := router.Group("/people")

	people.Get("/", h.People.ListPeople)
	people.Post("/refresh", h.People.RefreshPeople)
	people.Post("/merge", h.People.MergePeople)
	people.Get("/:id", h.People.GetPerson)
	people.Patch("/:id", h.People.RenamePerson)
	people.Delete("/:id", h.People.DeletePerson)
}
