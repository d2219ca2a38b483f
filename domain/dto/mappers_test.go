package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photo-dashboard/domain/models"
)

type fakeMedia struct{}

func (fakeMedia) ImageURL(id int64) string { return "img" }
func (fakeMedia) ThumbnailURL(id int64, size string) string { return "thumb:" + size }
func (fakeMedia) FaceURL(id int64) string { return "face" }

func day(d int) time.Time {
	return time.Date(2023, 5, d, 0, 0, 0, 0, time.UTC)
}

func TestResultSetToResponseBeforeAnySearch(t *testing.T) {
	resp := ResultSetToResponse(models.ResultSet{}, nil, fakeMedia{}, "")
	assert.False(t, resp.Loaded)
	assert.NotNil(t, resp.Results)
	assert.Empty(t, resp.Results)
	assert.False(t, resp.HasNext)
}

func TestResultSetToResponseDisplayOrder(t *testing.T) {
	page := models.ResultPage{
		Total:   41,
		Page:    2,
		PerPage: 20,
		Results: []models.PhotoMatch{
			{ID: 1, CapturedAt: day(1), PeopleIDs: []int64{7}},
			{ID: 2, CapturedAt: day(9)},
			{ID: 3, CapturedAt: day(5), ThumbnailURL: "backend-thumb"},
		},
	}
	lookup := func(id int64) models.Person {
		if id == 7 {
			return models.Person{ID: 7, Name: "Alex"}
		}
		return models.UnknownPerson(id)
	}

	relevance := ResultSetToResponse(models.NewResultSet(page, false), lookup, fakeMedia{}, "small")
	require.Len(t, relevance.Results, 3)
	assert.Equal(t, int64(1), relevance.Results[0].ImageID)
	assert.Equal(t, 3, relevance.TotalPages)
	assert.True(t, relevance.HasPrevious)
	assert.True(t, relevance.HasNext)
	assert.Equal(t, "thumb:small", relevance.Results[0].ThumbnailURL)
	assert.Equal(t, "backend-thumb", relevance.Results[2].ThumbnailURL)
	require.Len(t, relevance.Results[0].People, 1)
	assert.Equal(t, "Alex", relevance.Results[0].People[0].Name)
	assert.Equal(t, "face", relevance.Results[0].People[0].FaceImageURL)

	byDate := ResultSetToResponse(models.NewResultSet(page, true), lookup, fakeMedia{}, "")
	ids := []int64{}
	for _, r := range byDate.Results {
		ids = append(ids, r.ImageID)
	}
	assert.Equal(t, []int64{2, 3, 1}, ids)
	assert.Equal(t, relevance.Total, byDate.Total)
	assert.Equal(t, relevance.Page, byDate.Page)
}

func TestUnknownPersonHasNoFaceURL(t *testing.T) {
	resp := PersonToResponse(models.UnknownPerson(99), fakeMedia{})
	assert.True(t, resp.Unknown)
	assert.Empty(t, resp.FaceImageURL)
	assert.Equal(t, "U", resp.Initial)
}

func TestPhotoMatchKeepsUnparsedDate(t *testing.T) {
	resp := PhotoMatchToResponse(models.PhotoMatch{ID: 4, RawDate: "spring 2023"}, nil, fakeMedia{}, "")
	assert.True(t, resp.Date.IsZero())
	assert.Equal(t, "spring 2023", resp.RawDate)
	assert.Equal(t, []int64{}, resp.PeopleIDs)
}
