package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"photo-dashboard/domain/models"
)

// QueryUpdate is a partial edit of the query fields; nil fields are left alone
type QueryUpdate struct {
	Text       *string
	StartDate  *string
	EndDate    *string
	ClearDates bool
}

// Session is the per-tab dashboard state
type Session interface {
	ID() uuid.UUID
	LastActive() time.Time

	Query() models.QueryModel
	UpdateQuery(update QueryUpdate) (models.QueryModel, error)
	SetPage(page int) models.QueryModel

	Selection() models.Selection
	TogglePerson(ctx context.Context, id int64) (models.Selection, error)
	ClearSelection() models.Selection

	// Search runs the current query; page nil sends the model's page
	Search(ctx context.Context, page *int) (models.ResultSet, error)
	Next(ctx context.Context) (models.ResultSet, error)
	Previous(ctx context.Context) (models.ResultSet, error)
	SetSortByDate(on bool) models.ResultSet
	Results() models.ResultSet

	People(ctx context.Context) ([]models.Person, error)
	RefreshPeople(ctx context.Context) ([]models.Person, error)
	Person(ctx context.Context, id int64) (*models.Person, error)
	LookupPerson(id int64) models.Person

	Rename(ctx context.Context, id int64, name string) (*models.Person, error)
	RemovePerson(ctx context.Context, id int64) error
	Merge(ctx context.Context, sourceID, targetID int64) (*models.Person, error)

	Notify(n models.Notification)
	Snapshot() models.SessionSnapshot
}

type SessionService interface {
	Create(ctx context.Context) (Session, error)

	// Get returns a live session, restoring it from the snapshot store when needed
	Get(ctx context.Context, id uuid.UUID) (Session, error)
	Save(ctx context.Context, session Session) error
	Close(ctx context.Context, id uuid.UUID) error

	// Sweep closes sessions idle for longer than idle and reports how many were dropped
	Sweep(ctx context.Context, idle time.Duration) int
	Count() int
}
