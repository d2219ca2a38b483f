package handlers

import (
	"github.com/gofiber/fiber/v2"

	"photo-dashboard/domain/dto"
	"photo-dashboard/domain/repositories"
	"photo-dashboard/domain/services"
	"photo-dashboard/pkg/utils"
)

type SelectionHandler struct {
	sessions services.SessionService
	media    repositories.MediaLocator
}

func NewSelectionHandler(sessions services.SessionService, media repositories.MediaLocator) *SelectionHandler {
	return &SelectionHandler{sessions: sessions, media: media}
}

// @Router /api/v1/selection [get]
func (h *SelectionHandler) GetSelection(c *fiber.Ctx) error {
	session, err := sessionOrError(c)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, "Selection retrieved", dto.SelectionToResponse(session.Selection(), h.media))
}

// TogglePerson adds the person to the selection, or removes them when already selected
// @Router /api/v1/selection/toggle [post]
func (h *SelectionHandler) TogglePerson(c *fiber.Ctx) error {
	session, err := sessionOrError(c)
	if err != nil {
		return err
	}

	var req dto.ToggleSelectionRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, "Invalid request body", err)
	}

	selection, err := session.TogglePerson(c.UserContext(), req.PeopleID)
	if err != nil {
		return respondError(c, "Failed to update selection", err)
	}

	persist(c, h.sessions, session)
	return utils.SuccessResponse(c, "Selection updated", dto.SelectionToResponse(selection, h.media))
}

// @Router /api/v1/selection [delete]
func (h *SelectionHandler) ClearSelection(c *fiber.Ctx) error {
	session, err := sessionOrError(c)
	if err != nil {
		return err
	}

	selection := session.ClearSelection()
	persist(c, h.sessions, session)
	return utils.SuccessResponse(c, "Selection cleared", dto.SelectionToResponse(selection, h.media))
}
