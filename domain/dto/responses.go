package dto

import (
	"time"

	"github.com/google/uuid"

	"photo-dashboard/domain/models"
)

type PersonResponse struct {
	ID           int64  `json:"people_id"`
	Name         string `json:"name"`
	PhotoCount   int    `json:"photo_count"`
	FaceImageURL string `json:"face_image_url"`
	Initial      string `json:"initial"`
	Unknown      bool   `json:"unknown,omitempty"`
}

type PeopleListResponse struct {
	People []PersonResponse `json:"people"`
	Total  int              `json:"total"`
}

type PhotoMatchResponse struct {
	ImageID      int64            `json:"image_id"`
	Date         time.Time        `json:"date"`
	RawDate      string           `json:"raw_date,omitempty"`
	Location     string           `json:"location"`
	PeopleIDs    []int64          `json:"people_ids"`
	People       []PersonResponse `json:"people"`
	ImageURL     string           `json:"image_url"`
	ThumbnailURL string           `json:"thumbnail_url"`
}

// ResultsResponse is the displayed page plus the pagination control state
type ResultsResponse struct {
	Loaded      bool                 `json:"loaded"`
	Total       int                  `json:"total"`
	Page        int                  `json:"page"`
	PerPage     int                  `json:"per_page"`
	TotalPages  int                  `json:"total_pages"`
	HasPrevious bool                 `json:"has_previous"`
	HasNext     bool                 `json:"has_next"`
	SortByDate  bool                 `json:"sort_by_date"`
	Results     []PhotoMatchResponse `json:"results"`
}

type SelectionResponse struct {
	Label  string           `json:"label"`
	IDs    []int64          `json:"people_ids"`
	People []PersonResponse `json:"people"`
}

type SessionResponse struct {
	ID         uuid.UUID         `json:"id"`
	Query      models.QueryModel `json:"query"`
	Selection  SelectionResponse `json:"selection"`
	SortByDate bool              `json:"sort_by_date"`
	LastActive time.Time         `json:"last_active"`
}

type DatasetJobResponse struct {
	ID             uuid.UUID               `json:"id"`
	FolderPath     string                  `json:"folder_path"`
	Status         models.DatasetJobStatus `json:"status"`
	TotalProcessed int                     `json:"total_processed"`
	Error          string                  `json:"error,omitempty"`
	StartedAt      *time.Time              `json:"started_at"`
	CompletedAt    *time.Time              `json:"completed_at"`
	CreatedAt      time.Time               `json:"created_at"`
}
