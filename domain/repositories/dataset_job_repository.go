package repositories

import (
	"context"

	"github.com/google/uuid"

	"photo-dashboard/domain/models"
)

type DatasetJobRepository interface {
	Create(ctx context.Context, job *models.DatasetJob) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.DatasetJob, error)
	Update(ctx context.Context, job *models.DatasetJob) error
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]models.DatasetJob, error)
}
