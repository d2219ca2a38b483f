package repositories

import (
	"context"

	"photo-dashboard/domain/models"
)

type PhotoRepository interface {
	Search(ctx context.Context, query models.SearchQuery) (*models.ResultPage, error)

	// LoadDataset asks the backend to ingest every image under folderPath
	LoadDataset(ctx context.Context, folderPath string) (*models.DatasetResult, error)
}

// MediaLocator builds addresses for backend-served binary assets
type MediaLocator interface {
	ImageURL(imageID int64) string
	ThumbnailURL(imageID int64, size string) string
	FaceURL(personID int64) string
}
