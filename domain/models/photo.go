package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// PerPage is the fixed page size for a dashboard session
const PerPage = 20

// capturedAtLayouts lists the timestamp formats the backend has been seen to emit
var capturedAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006:01:02 15:04:05",
}

// PhotoMatch is a single search result row. PeopleIDs are weak references into the people directory.
type PhotoMatch struct {
	ID           int64     `json:"image_id"`
	CapturedAt   time.Time `json:"date"`
	Location     string    `json:"location"`
	PeopleIDs    []int64   `json:"people_ids"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`

	// RawDate keeps the backend value when it could not be parsed; CapturedAt is then zero
	RawDate string `json:"-"`
}

type photoMatchWire struct {
	ID           int64   `json:"image_id"`
	CapturedAt   string  `json:"date"`
	Location     string  `json:"location"`
	PeopleIDs    []int64 `json:"people_ids"`
	ThumbnailURL string  `json:"thumbnail_url,omitempty"`
}

// UnmarshalJSON accepts the loose date formats returned by the backend. An unknown format does
// not fail the row: CapturedAt stays zero and the raw value is kept.
func (m *PhotoMatch) UnmarshalJSON(data []byte) error {
	var wire photoMatchWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	var rawDate string
	capturedAt, err := ParseCapturedAt(wire.CapturedAt)
	if err != nil {
		rawDate = wire.CapturedAt
	}

	*m = PhotoMatch{
		ID:           wire.ID,
		CapturedAt:   capturedAt,
		Location:     wire.Location,
		PeopleIDs:    wire.PeopleIDs,
		ThumbnailURL: wire.ThumbnailURL,
		RawDate:      rawDate,
	}
	if m.PeopleIDs == nil {
		m.PeopleIDs = []int64{}
	}
	return nil
}

// ParseCapturedAt parses a backend timestamp. An empty value yields the zero time.
func ParseCapturedAt(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range capturedAtLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// ResultPage is one server-returned page of matches plus pagination metadata
type ResultPage struct {
	Total   int          `json:"total"`
	Page    int          `json:"page"`
	PerPage int          `json:"per_page"`
	Results []PhotoMatch `json:"results"`
}

// TotalPages returns ceil(total / perPage)
func (p ResultPage) TotalPages() int {
	if p.PerPage <= 0 || p.Total <= 0 {
		return 0
	}
	return (p.Total + p.PerPage - 1) / p.PerPage
}

// HasPrevious reports whether the Previous control is enabled
func (p ResultPage) HasPrevious() bool {
	return !PreviousDisabled(p.Page)
}

// HasNext reports whether the Next control is enabled
func (p ResultPage) HasNext() bool {
	return !NextDisabled(p.Page, p.PerPage, p.Total)
}

// PreviousDisabled is true iff page == 1
func PreviousDisabled(page int) bool {
	return page == 1
}

// NextDisabled is true iff page*perPage >= total
func NextDisabled(page, perPage, total int) bool {
	return page*perPage >= total
}
