package serviceimpl

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"photo-dashboard/domain/models"
	"photo-dashboard/domain/repositories"
	"photo-dashboard/domain/services"
	"photo-dashboard/pkg/logger"
)

const peopleLoadKey = "people"

type PeopleDirectoryImpl struct {
	personRepo repositories.PersonRepository

	mu     sync.RWMutex
	people []models.Person
	loaded bool

	group singleflight.Group
}

func NewPeopleDirectory(personRepo repositories.PersonRepository) services.PeopleDirectory {
	return &PeopleDirectoryImpl{
		personRepo: personRepo,
		people:     []models.Person{},
	}
}

// Load fetches the people list once per directory
func (d *PeopleDirectoryImpl) Load(ctx context.Context) error {
	if d.Loaded() {
		return nil
	}
	return d.fetch(ctx, false)
}

// Refresh replaces the cache wholesale with a fresh backend list
func (d *PeopleDirectoryImpl) Refresh(ctx context.Context) error {
	return d.fetch(ctx, true)
}

// fetch shares one in-flight request between callers; without force a loaded directory skips the backend
func (d *PeopleDirectoryImpl) fetch(ctx context.Context, force bool) error {
	ch := d.group.DoChan(peopleLoadKey, func() (interface{}, error) {
		if !force && d.Loaded() {
			return nil, nil
		}

		people, err := d.personRepo.List(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		if people == nil {
			people = []models.Person{}
		}
		d.mu.Lock()
		d.people = people
		d.loaded = true
		d.mu.Unlock()

		logger.People("load", "People directory loaded", map[string]interface{}{
			"count": len(people),
		})
		return len(people), nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			logger.PeopleError("load", "Failed to load people", res.Err, nil)
			return fmt.Errorf("failed to load people: %w", res.Err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *PeopleDirectoryImpl) Loaded() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.loaded
}

// People returns a copy of the cached list in backend order
func (d *PeopleDirectoryImpl) People() []models.Person {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.Person, len(d.people))
	copy(out, d.people)
	return out
}

func (d *PeopleDirectoryImpl) FindByID(id int64) (models.Person, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, p := range d.people {
		if p.ID == id {
			return p, true
		}
	}
	return models.Person{}, false
}

func (d *PeopleDirectoryImpl) Lookup(id int64) models.Person {
	if p, ok := d.FindByID(id); ok {
		return p
	}
	return models.UnknownPerson(id)
}

func (d *PeopleDirectoryImpl) Toggle(selection models.Selection, person models.Person) models.Selection {
	return selection.Toggle(person)
}

func (d *PeopleDirectoryImpl) Get(ctx context.Context, id int64) (*models.Person, error) {
	person, err := d.personRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get person %d: %w", id, err)
	}
	return person, nil
}

// Replace swaps the cached record with the same id; false when the id is not cached
func (d *PeopleDirectoryImpl) Replace(person models.Person) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, p := range d.people {
		if p.ID == person.ID {
			next := make([]models.Person, len(d.people))
			copy(next, d.people)
			next[i] = person
			d.people = next
			return true
		}
	}
	return false
}

func (d *PeopleDirectoryImpl) Remove(ids ...int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.people = withoutIDs(d.people, ids...)
}

// Collapse drops both merged ids and appends the surviving record
func (d *PeopleDirectoryImpl) Collapse(sourceID, targetID int64, merged models.Person) {
	d.mu.Lock()
	defer d.mu.Unlock()
	next := withoutIDs(d.people, sourceID, targetID, merged.ID)
	d.people = append(next, merged)
}

func withoutIDs(people []models.Person, ids ...int64) []models.Person {
	next := make([]models.Person, 0, len(people))
	for _, p := range people {
		drop := false
		for _, id := range ids {
			if p.ID == id {
				drop = true
				break
			}
		}
		if !drop {
			next = append(next, p)
		}
	}
	return next
}
