package models

import "sort"

// ResultSet stores the last fetched page verbatim together with the display sort flag.
// The sort is purely a display transform and never touches the stored page.
type ResultSet struct {
	page       ResultPage
	loaded     bool
	sortByDate bool
}

// NewResultSet wraps a freshly received page
func NewResultSet(page ResultPage, sortByDate bool) ResultSet {
	return ResultSet{page: page, loaded: true, sortByDate: sortByDate}
}

// Loaded reports whether any page has been received yet
func (r ResultSet) Loaded() bool { return r.loaded }

// Page returns the stored page exactly as the backend returned it
func (r ResultSet) Page() ResultPage { return r.page }

func (r ResultSet) SortByDate() bool { return r.sortByDate }

// WithSortByDate returns the same page with a different display flag
func (r ResultSet) WithSortByDate(on bool) ResultSet {
	r.sortByDate = on
	return r
}

// Display returns results in display order. With the flag off this is the backend slice
// itself (relevance order); with it on, a stable copy ordered by capture time, newest first.
func (r ResultSet) Display() []PhotoMatch {
	if !r.sortByDate {
		return r.page.Results
	}
	return SortByCapturedDesc(r.page.Results)
}

// Find returns the match with the given image id from the stored page
func (r ResultSet) Find(imageID int64) (PhotoMatch, bool) {
	for _, m := range r.page.Results {
		if m.ID == imageID {
			return m, true
		}
	}
	return PhotoMatch{}, false
}

// SortByCapturedDesc returns a copy ordered by CapturedAt descending; ties keep input order
func SortByCapturedDesc(matches []PhotoMatch) []PhotoMatch {
	out := make([]PhotoMatch, len(matches))
	copy(out, matches)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CapturedAt.After(out[j].CapturedAt)
	})
	return out
}
