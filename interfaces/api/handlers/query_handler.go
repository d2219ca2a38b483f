package handlers

import (
	"github.com/gofiber/fiber/v2"

	"photo-dashboard/domain/dto"
	"photo-dashboard/domain/services"
	"photo-dashboard/pkg/utils"
)

type QueryHandler struct {
	sessions services.SessionService
}

func NewQueryHandler(sessions services.SessionService) *QueryHandler {
	return &QueryHandler{sessions: sessions}
}

// GetQuery returns the current query fields
// @Router /api/v1/query [get]
func (h *QueryHandler) GetQuery(c *fiber.Ctx) error {
	session, err := sessionOrError(c)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, "Query retrieved", session.Query())
}

// UpdateQuery edits text and dates. Nothing is searched until POST /search.
// @Router /api/v1/query [put]
func (h *QueryHandler) UpdateQuery(c *fiber.Ctx) error {
	session, err := sessionOrError(c)
	if err != nil {
		return err
	}

	var req dto.UpdateQueryRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, "Invalid request body", err)
	}

	query, err := session.UpdateQuery(services.QueryUpdate{
		Text:       req.Text,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		ClearDates: req.ClearDates,
	})
	if err != nil {
		return respondError(c, "Invalid query", err)
	}

	persist(c, h.sessions, session)
	return utils.SuccessResponse(c, "Query updated", query)
}
