package serviceimpl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photo-dashboard/domain/models"
	"photo-dashboard/domain/repositories"
	"photo-dashboard/domain/services"
)

func newTestSession(people *fakePersonRepo, photos *fakePhotoRepo) (*SessionImpl, *recordingNotifier) {
	notifier := newRecordingNotifier()
	return NewSession(uuid.New(), people, photos, notifier), notifier
}

func strPtr(s string) *string { return &s }

func TestSessionSelectionScenario(t *testing.T) {
	s, _ := newTestSession(newFakePersonRepo(alex, bea, chris), echoingPhotoRepo(0))
	ctx := context.Background()

	_, err := s.TogglePerson(ctx, 3)
	require.NoError(t, err)
	_, err = s.TogglePerson(ctx, 5)
	require.NoError(t, err)
	sel, err := s.TogglePerson(ctx, 3)
	require.NoError(t, err)

	assert.Equal(t, []int64{5}, sel.IDs())
	assert.Equal(t, "1 people selected", sel.Label())
}

func TestSessionToggleUnknownPerson(t *testing.T) {
	s, _ := newTestSession(newFakePersonRepo(alex), echoingPhotoRepo(0))

	_, err := s.TogglePerson(context.Background(), 404)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Equal(t, 0, s.Selection().Len())
}

func TestSessionCanDeselectVanishedPerson(t *testing.T) {
	people := newFakePersonRepo(alex, bea)
	s, _ := newTestSession(people, echoingPhotoRepo(0))
	ctx := context.Background()

	_, err := s.TogglePerson(ctx, 3)
	require.NoError(t, err)
	require.NoError(t, s.RemovePerson(ctx, 3))

	assert.True(t, s.Selection().Contains(3), "selection is not rewritten by identity mutations")
	assert.True(t, s.LookupPerson(3).Unknown)

	sel, err := s.TogglePerson(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, sel.Len())
}

func TestSessionFilterChangeKeepsPage(t *testing.T) {
	photos := echoingPhotoRepo(100)
	s, _ := newTestSession(newFakePersonRepo(), photos)
	ctx := context.Background()

	_, err := s.Search(ctx, intPtr(3))
	require.NoError(t, err)
	assert.Equal(t, 3, s.Query().Page())

	q, err := s.UpdateQuery(services.QueryUpdate{Text: strPtr("dogs")})
	require.NoError(t, err)
	assert.Equal(t, 3, q.Page())

	_, err = s.Search(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, photos.lastQuery().Page)
	assert.Equal(t, "dogs", photos.lastQuery().Query)

	_, err = s.Search(ctx, intPtr(1))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Query().Page())
}

func TestSessionNextFollowsEchoedPage(t *testing.T) {
	s, _ := newTestSession(newFakePersonRepo(), echoingPhotoRepo(45))
	ctx := context.Background()

	_, err := s.Search(ctx, nil)
	require.NoError(t, err)
	_, err = s.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Query().Page())

	_, err = s.Previous(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Query().Page())
}

func TestSessionUpdateQueryDates(t *testing.T) {
	s, _ := newTestSession(newFakePersonRepo(), echoingPhotoRepo(0))

	q, err := s.UpdateQuery(services.QueryUpdate{StartDate: strPtr("2023-01-01")})
	require.NoError(t, err)
	assert.Equal(t, "2023-01-01", *q.DateRange().StartParam())
	assert.Nil(t, q.DateRange().EndParam())

	q, err = s.UpdateQuery(services.QueryUpdate{EndDate: strPtr("2023-12-31")})
	require.NoError(t, err)
	assert.Equal(t, "2023-01-01", *q.DateRange().StartParam())
	assert.Equal(t, "2023-12-31", *q.DateRange().EndParam())

	_, err = s.UpdateQuery(services.QueryUpdate{Text: strPtr("x"), EndDate: strPtr("31/12/2023")})
	assert.Error(t, err)
	assert.Equal(t, "", s.Query().Text(), "rejected update is all-or-nothing")

	q, err = s.UpdateQuery(services.QueryUpdate{ClearDates: true})
	require.NoError(t, err)
	assert.True(t, q.DateRange().IsZero())
}

func TestSessionSearchFailureNotifies(t *testing.T) {
	photos := &fakePhotoRepo{
		searchFn: func(ctx context.Context, q models.SearchQuery) (*models.ResultPage, error) {
			return nil, repositories.ErrNetworkFailure
		},
	}
	s, notifier := newTestSession(newFakePersonRepo(), photos)

	_, err := s.Search(context.Background(), nil)
	assert.ErrorIs(t, err, repositories.ErrNetworkFailure)
	assert.Equal(t, 1, s.Query().Page())

	sent := notifier.For(s.ID())
	require.Len(t, sent, 1)
	assert.Equal(t, models.NotificationDestructive, sent[0].Variant)
}

func TestSessionStaleFailureIsSilent(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	photos := &fakePhotoRepo{
		searchFn: func(ctx context.Context, q models.SearchQuery) (*models.ResultPage, error) {
			if q.Page == 2 {
				close(started)
				<-release
				return nil, &repositories.BackendError{Operation: "search", Status: 500}
			}
			return &models.ResultPage{Total: 45, Page: q.Page, PerPage: q.PerPage, Results: []models.PhotoMatch{{ID: 1}}}, nil
		},
	}
	s, notifier := newTestSession(newFakePersonRepo(), photos)

	older := make(chan error, 1)
	go func() {
		_, err := s.Search(context.Background(), intPtr(2))
		older <- err
	}()
	<-started

	_, err := s.Search(context.Background(), intPtr(1))
	require.NoError(t, err)

	close(release)
	assert.ErrorIs(t, <-older, services.ErrStaleResponse)
	assert.Equal(t, 1, s.Query().Page())
	assert.Empty(t, notifier.For(s.ID()))
}

func TestSessionOutOfRangeNavigationIsSilent(t *testing.T) {
	s, notifier := newTestSession(newFakePersonRepo(), echoingPhotoRepo(5))

	_, err := s.Search(context.Background(), nil)
	require.NoError(t, err)
	_, err = s.Next(context.Background())
	assert.ErrorIs(t, err, services.ErrNavigationOutOfRange)
	assert.Empty(t, notifier.For(s.ID()))
}

func TestSessionRenameNotifications(t *testing.T) {
	people := newFakePersonRepo(alex)
	s, notifier := newTestSession(people, echoingPhotoRepo(0))
	ctx := context.Background()

	_, err := s.Rename(ctx, 7, "Alexa")
	require.NoError(t, err)

	people.renameFn = func(id int64, name string) (*models.Person, error) {
		return nil, repositories.ErrNetworkFailure
	}
	_, err = s.Rename(ctx, 7, "Alexandra")
	assert.Error(t, err)

	sent := notifier.For(s.ID())
	require.Len(t, sent, 2)
	assert.Equal(t, "Person updated", sent[0].Title)
	assert.Equal(t, "Alexa has been successfully updated.", sent[0].Description)
	assert.Equal(t, models.NotificationDefault, sent[0].Variant)
	assert.Equal(t, "Error", sent[1].Title)
	assert.Equal(t, "Failed to update person. Please try again.", sent[1].Description)
	assert.Equal(t, models.NotificationDestructive, sent[1].Variant)

	assert.Equal(t, "Alexa", s.LookupPerson(7).Name)
}

func TestSessionMergeNotification(t *testing.T) {
	s, notifier := newTestSession(newFakePersonRepo(bea, chris), echoingPhotoRepo(0))

	_, err := s.Merge(context.Background(), 3, 5)
	require.NoError(t, err)

	sent := notifier.For(s.ID())
	require.Len(t, sent, 1)
	assert.Equal(t, "People merged", sent[0].Title)
	assert.Equal(t, "Bea and Chris have been successfully merged.", sent[0].Description)
}

func TestSessionSnapshot(t *testing.T) {
	s, _ := newTestSession(newFakePersonRepo(alex, bea), echoingPhotoRepo(0))
	ctx := context.Background()

	_, err := s.UpdateQuery(services.QueryUpdate{Text: strPtr("lake"), StartDate: strPtr("2022-06-01")})
	require.NoError(t, err)
	_, err = s.TogglePerson(ctx, 7)
	require.NoError(t, err)
	s.SetSortByDate(true)
	s.SetPage(4)

	snap := s.Snapshot()
	assert.Equal(t, s.ID(), snap.ID)
	assert.Equal(t, "lake", snap.Text)
	assert.Equal(t, "2022-06-01", *snap.StartDate)
	assert.Nil(t, snap.EndDate)
	assert.Equal(t, 4, snap.Page)
	assert.Equal(t, []int64{7}, snap.SelectedIDs)
	assert.True(t, snap.SortByDate)
}
