package handlers

import (
	"github.com/gofiber/fiber/v2"

	"photo-dashboard/domain/dto"
	"photo-dashboard/domain/repositories"
	"photo-dashboard/domain/services"
	"photo-dashboard/pkg/utils"
)

type PeopleHandler struct {
	sessions services.SessionService
	media    repositories.MediaLocator
}

func NewPeopleHandler(sessions services.SessionService, media repositories.MediaLocator) *PeopleHandler {
	return &PeopleHandler{sessions: sessions, media: media}
}

func personID(c *fiber.Ctx) (int64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return int64(id), true
}

// ListPeople loads the directory on first use and returns it
// @Router /api/v1/people [get]
func (h *PeopleHandler) ListPeople(c *fiber.Ctx) error {
	session, err := sessionOrError(c)
	if err != nil {
		return err
	}

	people, err := session.People(c.UserContext())
	if err != nil {
		return respondError(c, "Failed to load people", err)
	}
	return utils.SuccessResponse(c, "People retrieved", dto.PeopleToResponse(people, h.media))
}

// @Router /api/v1/people/refresh [post]
func (h *PeopleHandler) RefreshPeople(c *fiber.Ctx) error {
	session, err := sessionOrError(c)
	if err != nil {
		return err
	}

	people, err := session.RefreshPeople(c.UserContext())
	if err != nil {
		return respondError(c, "Failed to load people", err)
	}
	return utils.SuccessResponse(c, "People refreshed", dto.PeopleToResponse(people, h.media))
}

// GetPerson reads one person straight from the backend
// @Router /api/v1/people/{id} [get]
func (h *PeopleHandler) GetPerson(c *fiber.Ctx) error {
	session, err := sessionOrError(c)
	if err != nil {
		return err
	}
	id, ok := personID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid person id", nil)
	}

	person, err := session.Person(c.UserContext(), id)
	if err != nil {
		return respondError(c, "Failed to get person", err)
	}
	return utils.SuccessResponse(c, "Person retrieved", dto.PersonToResponse(*person, h.media))
}

// @Router /api/v1/people/{id} [patch]
func (h *PeopleHandler) RenamePerson(c *fiber.Ctx) error {
	session, err := sessionOrError(c)
	if err != nil {
		return err
	}
	id, ok := personID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid person id", nil)
	}

	var req dto.RenamePersonRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, "Invalid request body", err)
	}

	person, err := session.Rename(c.UserContext(), id, req.Name)
	if err != nil {
		return respondError(c, "Failed to update person", err)
	}
	return utils.SuccessResponse(c, "Person updated", dto.PersonToResponse(*person, h.media))
}

// @Router /api/v1/people/{id} [delete]
func (h *PeopleHandler) DeletePerson(c *fiber.Ctx) error {
	session, err := sessionOrError(c)
	if err != nil {
		return err
	}
	id, ok := personID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid person id", nil)
	}

	if err := session.RemovePerson(c.UserContext(), id); err != nil {
		return respondError(c, "Failed to delete person", err)
	}
	return utils.SuccessResponse(c, "Person deleted", nil)
}

// MergePeople folds source into target and returns the merged person
// @Router /api/v1/people/merge [post]
func (h *PeopleHandler) MergePeople(c *fiber.Ctx) error {
	session, err := sessionOrError(c)
	if err != nil {
		return err
	}

	var req dto.MergePeopleRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, "Invalid request body", err)
	}

	merged, err := session.Merge(c.UserContext(), req.SourceID, req.TargetID)
	if err != nil {
		return respondError(c, "Failed to merge people", err)
	}
	return utils.SuccessResponse(c, "People merged", dto.PersonToResponse(*merged, h.media))
}
