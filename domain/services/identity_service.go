package services

import (
	"context"

	"photo-dashboard/domain/models"
)

// IdentityController applies rename/delete/merge against the backend and patches the
// people directory only after the backend confirms
type IdentityController interface {
	Rename(ctx context.Context, id int64, name string) (*models.Person, error)
	Remove(ctx context.Context, id int64) error
	Merge(ctx context.Context, sourceID, targetID int64) (*models.Person, error)
}
