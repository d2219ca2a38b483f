package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryModelIsImmutable(t *testing.T) {
	base := NewQueryModel()
	next := base.WithText("beach").WithPage(3)

	assert.Equal(t, "", base.Text())
	assert.Equal(t, 1, base.Page())
	assert.Equal(t, "beach", next.Text())
	assert.Equal(t, 3, next.Page())
	assert.Equal(t, PerPage, next.PerPage())
}

func TestSearchQueryOmitsUnsetDates(t *testing.T) {
	q := BuildSearchQuery(NewQueryModel(), NewSelection(), nil)

	data, err := json.Marshal(q)
	require.NoError(t, err)

	var wire map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &wire))
	assert.NotContains(t, wire, "start_date")
	assert.NotContains(t, wire, "end_date")
	assert.Equal(t, []interface{}{}, wire["people_ids"])
	assert.Equal(t, "", wire["query"])
	assert.Equal(t, float64(1), wire["page"])
	assert.Equal(t, float64(20), wire["per_page"])
}

func TestSearchQueryPageOverride(t *testing.T) {
	end := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	q := NewQueryModel().WithPage(4).WithDateRange(DateRange{End: &end})

	sq := BuildSearchQuery(q, NewSelection(Person{ID: 2}), intPtrForTest(2))
	assert.Equal(t, 2, sq.Page)
	assert.Nil(t, sq.StartDate)
	require.NotNil(t, sq.EndDate)
	assert.Equal(t, "2023-12-31", *sq.EndDate)
	assert.Equal(t, []int64{2}, sq.PeopleIDs)
}

func TestParseDateRange(t *testing.T) {
	start, end := "2023-01-01", ""
	r, err := ParseDateRange(&start, &end)
	require.NoError(t, err)
	assert.NotNil(t, r.Start)
	assert.Nil(t, r.End)

	bad := "01/01/2023"
	_, err = ParseDateRange(&bad, nil)
	assert.Error(t, err)

	r, err = ParseDateRange(nil, nil)
	require.NoError(t, err)
	assert.True(t, r.IsZero())
}

func intPtrForTest(n int) *int { return &n }
