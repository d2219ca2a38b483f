package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"photo-dashboard/domain/repositories"
	"photo-dashboard/domain/services"
	"photo-dashboard/pkg/logger"
	"photo-dashboard/pkg/metrics"
)

type SessionServiceImpl struct {
	personRepo  repositories.PersonRepository
	photoRepo   repositories.PhotoRepository
	sessionRepo repositories.SessionRepository
	notifier    services.Notifier
	snapshotTTL time.Duration

	mu       sync.RWMutex
	sessions map[uuid.UUID]*SessionImpl
}

func NewSessionService(
	personRepo repositories.PersonRepository,
	photoRepo repositories.PhotoRepository,
	sessionRepo repositories.SessionRepository,
	notifier services.Notifier,
	snapshotTTL time.Duration,
) services.SessionService {
	return &SessionServiceImpl{
		personRepo:  personRepo,
		photoRepo:   photoRepo,
		sessionRepo: sessionRepo,
		notifier:    notifier,
		snapshotTTL: snapshotTTL,
		sessions:    make(map[uuid.UUID]*SessionImpl),
	}
}

func (s *SessionServiceImpl) Create(ctx context.Context) (services.Session, error) {
	session := NewSession(uuid.New(), s.personRepo, s.photoRepo, s.notifier)

	s.mu.Lock()
	s.sessions[session.ID()] = session
	count := len(s.sessions)
	s.mu.Unlock()
	metrics.SetActiveSessions(count)

	if err := s.Save(ctx, session); err != nil {
		logger.SessionWarn("create", "Session snapshot not persisted", map[string]interface{}{
			"session_id": session.ID().String(),
			"error":      err.Error(),
		})
	}

	logger.Session("create", "Session created", map[string]interface{}{
		"session_id": session.ID().String(),
	})
	return session, nil
}

// Get returns the live session or rebuilds it from its stored snapshot
func (s *SessionServiceImpl) Get(ctx context.Context, id uuid.UUID) (services.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok {
		return session, nil
	}

	snapshot, err := s.sessionRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to read session snapshot: %w", err)
	}

	restored := NewSession(id, s.personRepo, s.photoRepo, s.notifier)
	if err := restored.restore(ctx, snapshot); err != nil {
		logger.SessionError("restore", "Discarding unreadable snapshot", err, map[string]interface{}{
			"session_id": id.String(),
		})
		return nil, services.ErrSessionNotFound
	}

	s.mu.Lock()
	if existing, ok := s.sessions[id]; ok {
		s.mu.Unlock()
		return existing, nil
	}
	s.sessions[id] = restored
	count := len(s.sessions)
	s.mu.Unlock()
	metrics.SetActiveSessions(count)

	logger.Session("restore", "Session restored from snapshot", map[string]interface{}{
		"session_id":   id.String(),
		"selected_ids": snapshot.SelectedIDs,
	})
	return restored, nil
}

func (s *SessionServiceImpl) Save(ctx context.Context, session services.Session) error {
	snapshot := session.Snapshot()
	if err := s.sessionRepo.Save(ctx, &snapshot, s.snapshotTTL); err != nil {
		return fmt.Errorf("failed to save session snapshot: %w", err)
	}
	return nil
}

func (s *SessionServiceImpl) Close(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	_, live := s.sessions[id]
	delete(s.sessions, id)
	count := len(s.sessions)
	s.mu.Unlock()
	metrics.SetActiveSessions(count)

	if err := s.sessionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) && !live {
			return services.ErrSessionNotFound
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("failed to delete session snapshot: %w", err)
		}
	}

	logger.Session("close", "Session closed", map[string]interface{}{
		"session_id": id.String(),
	})
	return nil
}

// Sweep evicts idle sessions from memory. Their snapshots stay in the store until the TTL
// expires so a returning tab can still reattach.
func (s *SessionServiceImpl) Sweep(ctx context.Context, idle time.Duration) int {
	cutoff := time.Now().Add(-idle)

	var stale []*SessionImpl
	s.mu.RLock()
	for _, session := range s.sessions {
		if session.LastActive().Before(cutoff) {
			stale = append(stale, session)
		}
	}
	s.mu.RUnlock()

	for _, session := range stale {
		if err := s.Save(ctx, session); err != nil {
			logger.SessionWarn("sweep", "Snapshot not saved before eviction", map[string]interface{}{
				"session_id": session.ID().String(),
				"error":      err.Error(),
			})
		}
	}

	s.mu.Lock()
	removed := 0
	for _, session := range stale {
		if current, ok := s.sessions[session.ID()]; ok && current.LastActive().Before(cutoff) {
			delete(s.sessions, session.ID())
			removed++
		}
	}
	count := len(s.sessions)
	s.mu.Unlock()
	metrics.SetActiveSessions(count)

	if removed > 0 {
		logger.Session("sweep", "Evicted idle sessions", map[string]interface{}{
			"evicted":   removed,
			"remaining": count,
		})
	}
	return removed
}

func (s *SessionServiceImpl) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
