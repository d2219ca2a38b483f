package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"photo-dashboard/domain/models"
)

// SessionRepository persists session snapshots so a tab can reattach after a restart
type SessionRepository interface {
	Save(ctx context.Context, snapshot *models.SessionSnapshot, ttl time.Duration) error
	Get(ctx context.Context, id uuid.UUID) (*models.SessionSnapshot, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
