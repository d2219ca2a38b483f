package models

import (
	"encoding/json"
	"time"
)

// DateLayout is the wire format for date range bounds
const DateLayout = "2006-01-02"

// DateRange is an inclusive range; either bound may be absent
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// IsZero reports whether neither bound is set
func (r DateRange) IsZero() bool {
	return r.Start == nil && r.End == nil
}

// StartParam returns the start bound formatted for the backend, or nil when unset
func (r DateRange) StartParam() *string {
	return formatBound(r.Start)
}

// EndParam returns the end bound formatted for the backend, or nil when unset
func (r DateRange) EndParam() *string {
	return formatBound(r.End)
}

func formatBound(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

// ParseDateRange builds a range from optional YYYY-MM-DD strings
func ParseDateRange(start, end *string) (DateRange, error) {
	var r DateRange
	if start != nil && *start != "" {
		t, err := time.Parse(DateLayout, *start)
		if err != nil {
			return DateRange{}, err
		}
		r.Start = &t
	}
	if end != nil && *end != "" {
		t, err := time.Parse(DateLayout, *end)
		if err != nil {
			return DateRange{}, err
		}
		r.End = &t
	}
	return r, nil
}

// QueryModel holds the raw filter fields and the pagination cursor.
// It is an immutable value: every With* call returns a new snapshot, and perPage
// is fixed at construction.
type QueryModel struct {
	text      string
	dateRange DateRange
	page      int
	perPage   int
}

// NewQueryModel returns the initial query: match-all, no dates, page 1
func NewQueryModel() QueryModel {
	return QueryModel{
		page:    1,
		perPage: PerPage,
	}
}

func (q QueryModel) Text() string         { return q.text }
func (q QueryModel) DateRange() DateRange { return q.dateRange }
func (q QueryModel) Page() int            { return q.page }
func (q QueryModel) PerPage() int         { return q.perPage }

// WithText replaces the free-text term
func (q QueryModel) WithText(text string) QueryModel {
	q.text = text
	return q
}

// WithDateRange replaces the date range
func (q QueryModel) WithDateRange(r DateRange) QueryModel {
	q.dateRange = r
	return q
}

// WithPage replaces the page number
func (q QueryModel) WithPage(page int) QueryModel {
	q.page = page
	return q
}

type queryModelJSON struct {
	Text      string  `json:"text"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Page      int     `json:"page"`
	PerPage   int     `json:"per_page"`
}

func (q QueryModel) MarshalJSON() ([]byte, error) {
	return json.Marshal(queryModelJSON{
		Text:      q.text,
		StartDate: q.dateRange.StartParam(),
		EndDate:   q.dateRange.EndParam(),
		Page:      q.page,
		PerPage:   q.perPage,
	})
}

// SearchQuery is the outbound body of the backend search call
type SearchQuery struct {
	Query     string  `json:"query"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	PeopleIDs []int64 `json:"people_ids"`
	Page      int     `json:"page"`
	PerPage   int     `json:"per_page"`
}

// BuildSearchQuery composes the query model, the selection and an optional page override
// into a single outbound query.
func BuildSearchQuery(q QueryModel, selection Selection, pageOverride *int) SearchQuery {
	page := q.page
	if pageOverride != nil {
		page = *pageOverride
	}
	return SearchQuery{
		Query:     q.text,
		StartDate: q.dateRange.StartParam(),
		EndDate:   q.dateRange.EndParam(),
		PeopleIDs: selection.IDs(),
		Page:      page,
		PerPage:   q.perPage,
	}
}
