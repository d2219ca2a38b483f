package services

import (
	"context"

	"photo-dashboard/domain/models"
)

// SearchController turns a query snapshot and selection into a backend search and owns
// the session's ResultSet
type SearchController interface {
	// Execute searches with the given snapshot. pageOverride, when set, replaces the model's page.
	// A response overtaken by a newer request is dropped with ErrStaleResponse.
	Execute(ctx context.Context, query models.QueryModel, selection models.Selection, pageOverride *int) (models.ResultSet, error)

	Next(ctx context.Context, query models.QueryModel, selection models.Selection) (models.ResultSet, error)
	Previous(ctx context.Context, query models.QueryModel, selection models.Selection) (models.ResultSet, error)

	SetSortByDate(on bool) models.ResultSet
	Current() models.ResultSet
}
