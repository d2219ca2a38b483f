package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"photo-dashboard/domain/models"
	"photo-dashboard/domain/repositories"
	"photo-dashboard/domain/services"
	"photo-dashboard/pkg/logger"
	"photo-dashboard/pkg/metrics"
)

// SessionImpl is one browser tab's dashboard state. Query and selection are swapped as
// whole values under mu; backend calls never run while mu is held.
type SessionImpl struct {
	id       uuid.UUID
	notifier services.Notifier

	directory services.PeopleDirectory
	search    services.SearchController
	identity  services.IdentityController

	mu         sync.RWMutex
	query      models.QueryModel
	selection  models.Selection
	lastActive time.Time
}

func NewSession(
	id uuid.UUID,
	personRepo repositories.PersonRepository,
	photoRepo repositories.PhotoRepository,
	notifier services.Notifier,
) *SessionImpl {
	directory := NewPeopleDirectory(personRepo)
	return &SessionImpl{
		id:         id,
		notifier:   notifier,
		directory:  directory,
		search:     NewSearchController(photoRepo),
		identity:   NewIdentityController(personRepo, directory),
		query:      models.NewQueryModel(),
		selection:  models.NewSelection(),
		lastActive: time.Now(),
	}
}

// restore applies a persisted snapshot. Selected ids resolve against the directory when it
// can be loaded; otherwise they are kept as placeholders so the filter still applies.
func (s *SessionImpl) restore(ctx context.Context, snapshot *models.SessionSnapshot) error {
	query, err := snapshot.QueryModel()
	if err != nil {
		return fmt.Errorf("invalid snapshot query: %w", err)
	}

	if len(snapshot.SelectedIDs) > 0 {
		if err := s.directory.Load(ctx); err != nil {
			logger.SessionWarn("restore", "People unavailable while restoring selection", map[string]interface{}{
				"session_id": s.id.String(),
				"error":      err.Error(),
			})
		}
	}
	members := make([]models.Person, 0, len(snapshot.SelectedIDs))
	for _, id := range snapshot.SelectedIDs {
		members = append(members, s.directory.Lookup(id))
	}

	s.search.SetSortByDate(snapshot.SortByDate)

	s.mu.Lock()
	s.query = query
	s.selection = models.NewSelection(members...)
	s.mu.Unlock()
	return nil
}

func (s *SessionImpl) ID() uuid.UUID { return s.id }

func (s *SessionImpl) LastActive() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastActive
}

func (s *SessionImpl) touch() {
	s.mu.Lock()
	s.lastActive = time.Now()
	s.mu.Unlock()
}

func (s *SessionImpl) Query() models.QueryModel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

// UpdateQuery applies a partial edit atomically. The page is left as is.
func (s *SessionImpl) UpdateQuery(update services.QueryUpdate) (models.QueryModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()

	next := s.query
	if update.Text != nil {
		next = next.WithText(*update.Text)
	}

	if update.ClearDates {
		next = next.WithDateRange(models.DateRange{})
	} else if update.StartDate != nil || update.EndDate != nil {
		current := next.DateRange()
		start, end := current.StartParam(), current.EndParam()
		if update.StartDate != nil {
			start = update.StartDate
		}
		if update.EndDate != nil {
			end = update.EndDate
		}
		r, err := models.ParseDateRange(start, end)
		if err != nil {
			return s.query, fmt.Errorf("%w: %v", services.ErrInvalidDateRange, err)
		}
		next = next.WithDateRange(r)
	}

	s.query = next
	return s.query, nil
}

func (s *SessionImpl) SetPage(page int) models.QueryModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()
	s.query = s.query.WithPage(page)
	return s.query
}

func (s *SessionImpl) Selection() models.Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection
}

// TogglePerson flips membership of id. A selected id that has since vanished from the
// directory can still be toggled off.
func (s *SessionImpl) TogglePerson(ctx context.Context, id int64) (models.Selection, error) {
	s.touch()

	current := s.Selection()
	var person models.Person
	if member, ok := current.Member(id); ok {
		person = member
	} else {
		if err := s.loadPeople(ctx); err != nil {
			return current, err
		}
		p, ok := s.directory.FindByID(id)
		if !ok {
			return current, fmt.Errorf("person %d: %w", id, repositories.ErrNotFound)
		}
		person = p
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = s.directory.Toggle(s.selection, person)
	return s.selection, nil
}

func (s *SessionImpl) ClearSelection() models.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()
	s.selection = models.NewSelection()
	return s.selection
}

func (s *SessionImpl) snapshotFilters() (models.QueryModel, models.Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()
	return s.query, s.selection
}

// Search runs the current filters. On success the model's page follows the echoed page.
func (s *SessionImpl) Search(ctx context.Context, page *int) (models.ResultSet, error) {
	query, selection := s.snapshotFilters()
	rs, err := s.search.Execute(ctx, query, selection, page)
	return s.afterSearch(rs, err)
}

func (s *SessionImpl) Next(ctx context.Context) (models.ResultSet, error) {
	query, selection := s.snapshotFilters()
	rs, err := s.search.Next(ctx, query, selection)
	return s.afterSearch(rs, err)
}

func (s *SessionImpl) Previous(ctx context.Context) (models.ResultSet, error) {
	query, selection := s.snapshotFilters()
	rs, err := s.search.Previous(ctx, query, selection)
	return s.afterSearch(rs, err)
}

func (s *SessionImpl) afterSearch(rs models.ResultSet, err error) (models.ResultSet, error) {
	switch {
	case err == nil:
		s.mu.Lock()
		s.query = s.query.WithPage(rs.Page().Page)
		s.mu.Unlock()
	case errors.Is(err, services.ErrStaleResponse),
		errors.Is(err, services.ErrNavigationOutOfRange),
		errors.Is(err, services.ErrNoResults):
	default:
		s.Notify(models.NewErrorNotification("Failed to search photos. Please try again."))
	}
	return rs, err
}

func (s *SessionImpl) SetSortByDate(on bool) models.ResultSet {
	s.touch()
	return s.search.SetSortByDate(on)
}

func (s *SessionImpl) Results() models.ResultSet {
	return s.search.Current()
}

func (s *SessionImpl) loadPeople(ctx context.Context) error {
	if err := s.directory.Load(ctx); err != nil {
		s.Notify(models.NewErrorNotification("Failed to load people. Please try again."))
		return err
	}
	return nil
}

func (s *SessionImpl) People(ctx context.Context) ([]models.Person, error) {
	s.touch()
	if err := s.loadPeople(ctx); err != nil {
		return s.directory.People(), err
	}
	return s.directory.People(), nil
}

func (s *SessionImpl) RefreshPeople(ctx context.Context) ([]models.Person, error) {
	s.touch()
	if err := s.directory.Refresh(ctx); err != nil {
		s.Notify(models.NewErrorNotification("Failed to load people. Please try again."))
		return s.directory.People(), err
	}
	return s.directory.People(), nil
}

func (s *SessionImpl) Person(ctx context.Context, id int64) (*models.Person, error) {
	s.touch()
	return s.directory.Get(ctx, id)
}

func (s *SessionImpl) LookupPerson(id int64) models.Person {
	return s.directory.Lookup(id)
}

func (s *SessionImpl) Rename(ctx context.Context, id int64, name string) (*models.Person, error) {
	s.touch()
	if err := s.loadPeople(ctx); err != nil {
		return nil, err
	}

	person, err := s.identity.Rename(ctx, id, name)
	if err != nil {
		s.Notify(models.NewErrorNotification("Failed to update person. Please try again."))
		return nil, err
	}

	s.Notify(models.NewNotification("Person updated", fmt.Sprintf("%s has been successfully updated.", person.Name)))
	return person, nil
}

func (s *SessionImpl) RemovePerson(ctx context.Context, id int64) error {
	s.touch()
	if err := s.identity.Remove(ctx, id); err != nil {
		s.Notify(models.NewErrorNotification("Failed to delete person. Please try again."))
		return err
	}

	s.Notify(models.NewNotification("Person deleted", "The person has been successfully deleted."))
	return nil
}

func (s *SessionImpl) Merge(ctx context.Context, sourceID, targetID int64) (*models.Person, error) {
	s.touch()
	if err := s.loadPeople(ctx); err != nil {
		return nil, err
	}
	source := s.directory.Lookup(sourceID)
	target := s.directory.Lookup(targetID)

	merged, err := s.identity.Merge(ctx, sourceID, targetID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMerge) {
			s.Notify(models.NewErrorNotification("Choose two different people to merge."))
		} else {
			s.Notify(models.NewErrorNotification("Failed to merge people. Please try again."))
		}
		return nil, err
	}

	s.Notify(models.NewNotification("People merged",
		fmt.Sprintf("%s and %s have been successfully merged.", source.Name, target.Name)))
	return merged, nil
}

// Notify forwards a toast to the session's clients
func (s *SessionImpl) Notify(n models.Notification) {
	metrics.IncNotification(string(n.Variant))
	if s.notifier != nil {
		s.notifier.Notify(s.id, n)
	}
}

func (s *SessionImpl) Snapshot() models.SessionSnapshot {
	s.mu.RLock()
	query := s.query
	ids := s.selection.IDs()
	updated := s.lastActive
	s.mu.RUnlock()

	r := query.DateRange()
	return models.SessionSnapshot{
		ID:          s.id,
		Text:        query.Text(),
		StartDate:   r.StartParam(),
		EndDate:     r.EndParam(),
		Page:        query.Page(),
		SelectedIDs: ids,
		SortByDate:  s.search.Current().SortByDate(),
		UpdatedAt:   updated,
	}
}
