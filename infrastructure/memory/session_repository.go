package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"photo-dashboard/domain/models"
	"photo-dashboard/domain/repositories"
)

type sessionEntry struct {
	snapshot  models.SessionSnapshot
	expiresAt time.Time
}

// SessionRepository keeps snapshots in process memory; used when Redis is unavailable
type SessionRepository struct {
	mu      sync.Mutex
	entries map[uuid.UUID]sessionEntry
	now     func() time.Time
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		entries: make(map[uuid.UUID]sessionEntry),
		now:     time.Now,
	}
}

func (r *SessionRepository) Save(ctx context.Context, snapshot *models.SessionSnapshot, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := sessionEntry{snapshot: copySnapshot(*snapshot)}
	if ttl > 0 {
		entry.expiresAt = r.now().Add(ttl)
	}
	r.entries[snapshot.ID] = entry
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, id uuid.UUID) (*models.SessionSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if !ok || r.expired(entry) {
		delete(r.entries, id)
		return nil, repositories.ErrNotFound
	}
	snapshot := copySnapshot(entry.snapshot)
	return &snapshot, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	delete(r.entries, id)
	if !ok || r.expired(entry) {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *SessionRepository) expired(entry sessionEntry) bool {
	return !entry.expiresAt.IsZero() && r.now().After(entry.expiresAt)
}

func copySnapshot(s models.SessionSnapshot) models.SessionSnapshot {
	ids := make([]int64, len(s.SelectedIDs))
	copy(ids, s.SelectedIDs)
	s.SelectedIDs = ids
	return s
}
