package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"photo-dashboard/domain/dto"
	"photo-dashboard/domain/models"
	"photo-dashboard/domain/repositories"
	"photo-dashboard/domain/services"
	"photo-dashboard/pkg/utils"
)

type SearchHandler struct {
	sessions services.SessionService
	media    repositories.MediaLocator
}

func NewSearchHandler(sessions services.SessionService, media repositories.MediaLocator) *SearchHandler {
	return &SearchHandler{sessions: sessions, media: media}
}

func (h *SearchHandler) results(c *fiber.Ctx, session services.Session, rs models.ResultSet) dto.ResultsResponse {
	return dto.ResultSetToResponse(rs, session.LookupPerson, h.media, c.Query("thumb_size"))
}

// Search runs the session's query. A fresh search starts at page 1 unless the body names a
// page or asks to keep the current one.
// @Router /api/v1/search [post]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	session, err := sessionOrError(c)
	if err != nil {
		return err
	}

	var req dto.SearchRequest
	if len(c.Body()) > 0 {
		if err := parseBody(c, &req); err != nil {
			return respondError(c, "Invalid request body", err)
		}
	}

	page := req.Page
	if page == nil && !req.KeepPage {
		first := 1
		page = &first
	}

	rs, err := session.Search(c.UserContext(), page)
	if err != nil {
		return respondError(c, "Failed to search photos", err)
	}

	persist(c, h.sessions, session)
	return utils.SuccessResponse(c, "Search completed", h.results(c, session, rs))
}

// @Router /api/v1/search/next [post]
func (h *SearchHandler) Next(c *fiber.Ctx) error {
	session, err := sessionOrError(c)
	if err != nil {
		return err
	}

	rs, err := session.Next(c.UserContext())
	if err != nil {
		return respondError(c, "Failed to load next page", err)
	}

	persist(c, h.sessions, session)
	return utils.SuccessResponse(c, "Page loaded", h.results(c, session, rs))
}

// @Router /api/v1/search/previous [post]
func (h *SearchHandler) Previous(c *fiber.Ctx) error {
	session, err := sessionOrError(c)
	if err != nil {
		return err
	}

	rs, err := session.Previous(c.UserContext())
	if err != nil {
		return respondError(c, "Failed to load previous page", err)
	}

	persist(c, h.sessions, session)
	return utils.SuccessResponse(c, "Page loaded", h.results(c, session, rs))
}

// GetResults returns the last received page in display order
// @Router /api/v1/search/results [get]
func (h *SearchHandler) GetResults(c *fiber.Ctx) error {
	session, err := sessionOrError(c)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, "Results retrieved", h.results(c, session, session.Results()))
}

// SetSort toggles the capture-date display order without refetching
// @Router /api/v1/search/sort [put]
func (h *SearchHandler) SetSort(c *fiber.Ctx) error {
	session, err := sessionOrError(c)
	if err != nil {
		return err
	}

	var req dto.SortRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, "Invalid request body", err)
	}

	rs := session.SetSortByDate(req.ByDate)
	persist(c, h.sessions, session)
	return utils.SuccessResponse(c, "Sort updated", h.results(c, session, rs))
}

// GetResult returns one match from the current page with its full-size image address
// @Router /api/v1/search/results/{image_id} [get]
func (h *SearchHandler) GetResult(c *fiber.Ctx) error {
	session, err := sessionOrError(c)
	if err != nil {
		return err
	}

	imageID, err := c.ParamsInt("image_id")
	if err != nil || imageID <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid image id", err)
	}

	match, ok := session.Results().Find(int64(imageID))
	if !ok {
		return respondError(c, "Image not in current results",
			fmt.Errorf("image %d: %w", imageID, repositories.ErrNotFound))
	}

	return utils.SuccessResponse(c, "Image retrieved",
		dto.PhotoMatchToResponse(match, session.LookupPerson, h.media, c.Query("thumb_size")))
}
