package services

import (
	"context"

	"github.com/google/uuid"

	"photo-dashboard/domain/models"
)

type DatasetService interface {
	// Start records a pending ingestion job and queues it for the worker
	Start(ctx context.Context, sessionID uuid.UUID, folderPath string) (*models.DatasetJob, error)
	Get(ctx context.Context, id uuid.UUID) (*models.DatasetJob, error)

	// Run performs the backend call for a queued job and settles it
	Run(ctx context.Context, jobID uuid.UUID) error
}

// JobQueue hands dataset jobs to a background runner
type JobQueue interface {
	Enqueue(jobID uuid.UUID) error
}
