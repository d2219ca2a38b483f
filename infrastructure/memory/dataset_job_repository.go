package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"photo-dashboard/domain/models"
	"photo-dashboard/domain/repositories"
)

// DatasetJobRepository holds ingestion jobs for the lifetime of the process
type DatasetJobRepository struct {
	mu   sync.RWMutex
	jobs map[uuid.UUID]models.DatasetJob
}

func NewDatasetJobRepository() *DatasetJobRepository {
	return &DatasetJobRepository{jobs: make(map[uuid.UUID]models.DatasetJob)}
}

func (r *DatasetJobRepository) Create(ctx context.Context, job *models.DatasetJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.ID] = *job
	return nil
}

func (r *DatasetJobRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.DatasetJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &job, nil
}

func (r *DatasetJobRepository) Update(ctx context.Context, job *models.DatasetJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[job.ID]; !ok {
		return repositories.ErrNotFound
	}
	r.jobs[job.ID] = *job
	return nil
}

// ListBySession returns the session's jobs, newest first
func (r *DatasetJobRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]models.DatasetJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	jobs := []models.DatasetJob{}
	for _, job := range r.jobs {
		if job.SessionID == sessionID {
			jobs = append(jobs, job)
		}
	}
	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})
	return jobs, nil
}
