package serviceimpl

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photo-dashboard/domain/models"
	"photo-dashboard/domain/repositories"
)

func TestPeopleDirectoryLoadsOnce(t *testing.T) {
	repo := newFakePersonRepo(alex, bea)
	dir := NewPeopleDirectory(repo)

	require.NoError(t, dir.Load(context.Background()))
	require.NoError(t, dir.Load(context.Background()))

	assert.Equal(t, int32(1), repo.listCalls.Load())
	assert.Len(t, dir.People(), 2)
	assert.True(t, dir.Loaded())
}

func TestPeopleDirectoryConcurrentLoadSharesRequest(t *testing.T) {
	repo := newFakePersonRepo(alex, bea)
	repo.listGate = make(chan struct{})
	dir := NewPeopleDirectory(repo)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- dir.Load(context.Background())
		}()
	}

	assert.Eventually(t, func() bool { return repo.listCalls.Load() == 1 }, timeout, tick)
	close(repo.listGate)
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(1), repo.listCalls.Load())
}

func TestPeopleDirectoryFailedRefreshKeepsPreviousState(t *testing.T) {
	repo := newFakePersonRepo(alex)
	dir := NewPeopleDirectory(repo)
	require.NoError(t, dir.Load(context.Background()))

	repo.listErr = fmt.Errorf("list_people: %w", repositories.ErrNetworkFailure)
	err := dir.Refresh(context.Background())

	assert.ErrorIs(t, err, repositories.ErrNetworkFailure)
	assert.Equal(t, []models.Person{alex}, dir.People())
}

func TestPeopleDirectoryFailedFirstLoadStaysEmpty(t *testing.T) {
	repo := newFakePersonRepo(alex)
	repo.listErr = repositories.ErrNetworkFailure
	dir := NewPeopleDirectory(repo)

	assert.Error(t, dir.Load(context.Background()))
	assert.False(t, dir.Loaded())
	assert.Empty(t, dir.People())
}

func TestPeopleDirectoryLookup(t *testing.T) {
	dir := NewPeopleDirectory(newFakePersonRepo(alex))
	require.NoError(t, dir.Load(context.Background()))

	p, ok := dir.FindByID(7)
	assert.True(t, ok)
	assert.Equal(t, "Alex", p.Name)

	_, ok = dir.FindByID(99)
	assert.False(t, ok)

	unknown := dir.Lookup(99)
	assert.True(t, unknown.Unknown)
	assert.Equal(t, models.UnknownPersonName, unknown.Name)
	assert.Equal(t, int64(99), unknown.ID)
}

func TestToggleTwiceRestoresSelection(t *testing.T) {
	dir := NewPeopleDirectory(newFakePersonRepo())
	cases := []models.Selection{
		models.NewSelection(),
		models.NewSelection(bea),
		models.NewSelection(bea, chris),
	}
	people := []models.Person{alex, bea, chris}

	for _, s := range cases {
		for _, p := range people {
			twice := dir.Toggle(dir.Toggle(s, p), p)
			assert.True(t, twice.Equal(s), "toggle(toggle(S,%d)) != S", p.ID)
		}
	}
}

func TestToggleMatchesByID(t *testing.T) {
	dir := NewPeopleDirectory(newFakePersonRepo())
	stale := models.Person{ID: 3, Name: "Bea (old)", PhotoCount: 1}

	s := dir.Toggle(models.NewSelection(), stale)
	s = dir.Toggle(s, bea)

	assert.Equal(t, 0, s.Len())
}

func TestSelectionChipOrder(t *testing.T) {
	dir := NewPeopleDirectory(newFakePersonRepo())

	s := dir.Toggle(models.NewSelection(), bea)
	s = dir.Toggle(s, chris)
	s = dir.Toggle(s, bea)

	assert.Equal(t, []int64{5}, s.IDs())
}

func TestCollapseReplacesBothIDs(t *testing.T) {
	dir := NewPeopleDirectory(newFakePersonRepo(alex, bea, chris))
	require.NoError(t, dir.Load(context.Background()))

	merged := models.Person{ID: 42, Name: "Bea", PhotoCount: 13}
	dir.Collapse(3, 5, merged)

	_, ok := dir.FindByID(3)
	assert.False(t, ok)
	_, ok = dir.FindByID(5)
	assert.False(t, ok)
	got, ok := dir.FindByID(42)
	require.True(t, ok)
	assert.Equal(t, merged, got)
	assert.Len(t, dir.People(), 2)
}

func TestReplaceUnknownID(t *testing.T) {
	dir := NewPeopleDirectory(newFakePersonRepo(alex))
	require.NoError(t, dir.Load(context.Background()))

	assert.False(t, dir.Replace(models.Person{ID: 100, Name: "Nobody"}))
	assert.Len(t, dir.People(), 1)
}
