package serviceimpl

import (
	"context"
	"fmt"
	"sync"
	"time"

	"photo-dashboard/domain/models"
	"photo-dashboard/domain/repositories"
	"photo-dashboard/domain/services"
	"photo-dashboard/pkg/logger"
	"photo-dashboard/pkg/metrics"
)

type SearchControllerImpl struct {
	photoRepo repositories.PhotoRepository

	mu         sync.Mutex
	results    models.ResultSet
	sortByDate bool
	issued     uint64
}

func NewSearchController(photoRepo repositories.PhotoRepository) services.SearchController {
	return &SearchControllerImpl{photoRepo: photoRepo}
}

// Execute runs one search. The page is never reset here; callers wanting to start over pass page 1.
func (s *SearchControllerImpl) Execute(ctx context.Context, query models.QueryModel, selection models.Selection, pageOverride *int) (models.ResultSet, error) {
	outbound := models.BuildSearchQuery(query, selection, pageOverride)

	s.mu.Lock()
	s.issued++
	seq := s.issued
	s.mu.Unlock()

	start := time.Now()
	page, err := s.photoRepo.Search(ctx, outbound)

	s.mu.Lock()
	defer s.mu.Unlock()

	// A newer request owns the result set, whether this one succeeded or not
	if seq != s.issued {
		metrics.IncStaleResponse()
		logger.SearchWarn("execute", "Discarded stale search response", map[string]interface{}{
			"seq":    seq,
			"latest": s.issued,
			"failed": err != nil,
		})
		return s.results, services.ErrStaleResponse
	}

	if err != nil {
		logger.SearchError("execute", "Search failed", err, map[string]interface{}{
			"seq":  seq,
			"page": outbound.Page,
		})
		return s.results, fmt.Errorf("search failed: %w", err)
	}

	s.results = models.NewResultSet(*page, s.sortByDate)

	logger.Search("execute", "Search completed", map[string]interface{}{
		"seq":        seq,
		"query":      outbound.Query,
		"people_ids": outbound.PeopleIDs,
		"page":       page.Page,
		"total":      page.Total,
		"returned":   len(page.Results),
		"duration":   time.Since(start).String(),
	})
	return s.results, nil
}

// Next re-runs the full query for the page after the displayed one
func (s *SearchControllerImpl) Next(ctx context.Context, query models.QueryModel, selection models.Selection) (models.ResultSet, error) {
	current := s.Current()
	if !current.Loaded() {
		return current, services.ErrNoResults
	}

	page := current.Page()
	if models.NextDisabled(page.Page, page.PerPage, page.Total) {
		return current, services.ErrNavigationOutOfRange
	}

	target := page.Page + 1
	return s.Execute(ctx, query, selection, &target)
}

// Previous re-runs the full query for the page before the displayed one
func (s *SearchControllerImpl) Previous(ctx context.Context, query models.QueryModel, selection models.Selection) (models.ResultSet, error) {
	current := s.Current()
	if !current.Loaded() {
		return current, services.ErrNoResults
	}

	page := current.Page()
	if models.PreviousDisabled(page.Page) || page.Page < 2 {
		return current, services.ErrNavigationOutOfRange
	}

	target := page.Page - 1
	return s.Execute(ctx, query, selection, &target)
}

func (s *SearchControllerImpl) SetSortByDate(on bool) models.ResultSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortByDate = on
	s.results = s.results.WithSortByDate(on)
	return s.results
}

func (s *SearchControllerImpl) Current() models.ResultSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}
