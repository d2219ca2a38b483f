package services

import (
	"context"

	"photo-dashboard/domain/models"
)

// PeopleDirectory is a session's lazily loaded cache of known people
type PeopleDirectory interface {
	// Load fetches the list once; concurrent callers share the in-flight request.
	// On failure the previous contents are kept.
	Load(ctx context.Context) error

	// Refresh forces a wholesale reload
	Refresh(ctx context.Context) error

	Loaded() bool
	People() []models.Person

	FindByID(id int64) (models.Person, bool)

	// Lookup resolves id to the cached person or the unknown-person placeholder
	Lookup(id int64) models.Person

	Toggle(selection models.Selection, person models.Person) models.Selection

	// Get reads a single person from the backend without touching the cache
	Get(ctx context.Context, id int64) (*models.Person, error)

	// Cache patches, applied only after a confirmed backend mutation
	Replace(person models.Person) bool
	Remove(ids ...int64)
	Collapse(sourceID, targetID int64, merged models.Person)
}
