package serviceimpl

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"photo-dashboard/domain/models"
	"photo-dashboard/domain/repositories"
)

type fakePersonRepo struct {
	mu     sync.Mutex
	people []models.Person

	listCalls   atomic.Int32
	mutateCalls atomic.Int32

	listErr   error
	listGate  chan struct{}
	renameFn  func(id int64, name string) (*models.Person, error)
	deleteErr error
	mergeFn   func(sourceID, targetID int64) (*models.Person, error)
}

func newFakePersonRepo(people ...models.Person) *fakePersonRepo {
	return &fakePersonRepo{people: people}
}

func (f *fakePersonRepo) List(ctx context.Context) ([]models.Person, error) {
	f.listCalls.Add(1)
	if f.listGate != nil {
		<-f.listGate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Person, len(f.people))
	copy(out, f.people)
	return out, nil
}

func (f *fakePersonRepo) GetByID(ctx context.Context, id int64) (*models.Person, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.people {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakePersonRepo) Rename(ctx context.Context, id int64, name string) (*models.Person, error) {
	f.mutateCalls.Add(1)
	if f.renameFn != nil {
		return f.renameFn(id, name)
	}
	return &models.Person{ID: id, Name: name}, nil
}

func (f *fakePersonRepo) Delete(ctx context.Context, id int64) error {
	f.mutateCalls.Add(1)
	return f.deleteErr
}

func (f *fakePersonRepo) Merge(ctx context.Context, sourceID, targetID int64) (*models.Person, error) {
	f.mutateCalls.Add(1)
	if f.mergeFn != nil {
		return f.mergeFn(sourceID, targetID)
	}
	return &models.Person{ID: targetID, Name: "Merged"}, nil
}

type fakePhotoRepo struct {
	mu      sync.Mutex
	queries []models.SearchQuery

	searchFn  func(ctx context.Context, q models.SearchQuery) (*models.ResultPage, error)
	datasetFn func(ctx context.Context, folder string) (*models.DatasetResult, error)
}

// echoingPhotoRepo answers every search with the requested page of a fixed total
func echoingPhotoRepo(total int) *fakePhotoRepo {
	return &fakePhotoRepo{
		searchFn: func(ctx context.Context, q models.SearchQuery) (*models.ResultPage, error) {
			return &models.ResultPage{Total: total, Page: q.Page, PerPage: q.PerPage, Results: []models.PhotoMatch{}}, nil
		},
	}
}

func (f *fakePhotoRepo) Search(ctx context.Context, q models.SearchQuery) (*models.ResultPage, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	f.mu.Unlock()
	return f.searchFn(ctx, q)
}

func (f *fakePhotoRepo) LoadDataset(ctx context.Context, folder string) (*models.DatasetResult, error) {
	return f.datasetFn(ctx, folder)
}

func (f *fakePhotoRepo) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

func (f *fakePhotoRepo) lastQuery() models.SearchQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries[len(f.queries)-1]
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent map[uuid.UUID][]models.Notification
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{sent: make(map[uuid.UUID][]models.Notification)}
}

func (n *recordingNotifier) Notify(sessionID uuid.UUID, notification models.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent[sessionID] = append(n.sent[sessionID], notification)
}

func (n *recordingNotifier) For(sessionID uuid.UUID) []models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]models.Notification, len(n.sent[sessionID]))
	copy(out, n.sent[sessionID])
	return out
}

var (
	alex  = models.Person{ID: 7, Name: "Alex", PhotoCount: 12}
	bea   = models.Person{ID: 3, Name: "Bea", PhotoCount: 4}
	chris = models.Person{ID: 5, Name: "Chris", PhotoCount: 9}
)
