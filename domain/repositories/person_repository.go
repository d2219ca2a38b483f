package repositories

import (
	"context"

	"photo-dashboard/domain/models"
)

// PersonRepository is the backend's identity surface. All mutations are authoritative on
// the backend; callers apply the returned records to their local caches.
type PersonRepository interface {
	List(ctx context.Context) ([]models.Person, error)
	GetByID(ctx context.Context, id int64) (*models.Person, error)

	// Rename returns the updated record; the backend may omit photo_count
	Rename(ctx context.Context, id int64, name string) (*models.Person, error)
	Delete(ctx context.Context, id int64) error

	// Merge folds source into target and returns the surviving record
	Merge(ctx context.Context, sourceID, targetID int64) (*models.Person, error)
}
