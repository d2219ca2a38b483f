package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"photo-dashboard/domain/dto"
	"photo-dashboard/domain/services"
	"photo-dashboard/pkg/utils"
)

type DatasetHandler struct {
	datasets services.DatasetService
}

func NewDatasetHandler(datasets services.DatasetService) *DatasetHandler {
	return &DatasetHandler{datasets: datasets}
}

// LoadDataset queues a backend ingestion of the folder. The outcome arrives as a
// notification on the session's websocket and can be polled through the job.
// @Router /api/v1/dataset/load [post]
func (h *DatasetHandler) LoadDataset(c *fiber.Ctx) error {
	session, err := sessionOrError(c)
	if err != nil {
		return err
	}

	var req dto.LoadDatasetRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, "Invalid request body", err)
	}

	job, err := h.datasets.Start(c.UserContext(), session.ID(), req.FolderPath)
	if err != nil {
		return respondError(c, "Failed to load dataset", err)
	}
	return utils.AcceptedResponse(c, "Dataset load queued", dto.DatasetJobToResponse(job))
}

// @Router /api/v1/dataset/jobs/{id} [get]
func (h *DatasetHandler) GetJob(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid job id", err)
	}

	job, err := h.datasets.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, "Failed to get dataset job", err)
	}
	return utils.SuccessResponse(c, "Dataset job retrieved", dto.DatasetJobToResponse(job))
}
