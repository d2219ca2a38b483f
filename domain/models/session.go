package models

import (
	"time"

	"github.com/google/uuid"
)

// SessionSnapshot is the persisted form of a dashboard session's filter state.
// Results and the people cache are not persisted; they are refetched on demand.
type SessionSnapshot struct {
	ID          uuid.UUID `json:"id"`
	Text        string    `json:"text"`
	StartDate   *string   `json:"start_date,omitempty"`
	EndDate     *string   `json:"end_date,omitempty"`
	Page        int       `json:"page"`
	SelectedIDs []int64   `json:"selected_ids"`
	SortByDate  bool      `json:"sort_by_date"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// QueryModel rebuilds the query model captured by the snapshot
func (s SessionSnapshot) QueryModel() (QueryModel, error) {
	r, err := ParseDateRange(s.StartDate, s.EndDate)
	if err != nil {
		return QueryModel{}, err
	}
	page := s.Page
	if page < 1 {
		page = 1
	}
	return NewQueryModel().WithText(s.Text).WithDateRange(r).WithPage(page), nil
}
