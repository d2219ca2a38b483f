package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"photo-dashboard/domain/models"
	"photo-dashboard/domain/repositories"
	"photo-dashboard/domain/services"
	"photo-dashboard/pkg/logger"
	"photo-dashboard/pkg/metrics"
)

var ErrEmptyFolderPath = errors.New("folder path is required")

type DatasetServiceImpl struct {
	photoRepo repositories.PhotoRepository
	jobRepo   repositories.DatasetJobRepository
	queue     services.JobQueue
	notifier  services.Notifier
	timeout   time.Duration
}

func NewDatasetService(
	photoRepo repositories.PhotoRepository,
	jobRepo repositories.DatasetJobRepository,
	queue services.JobQueue,
	notifier services.Notifier,
	timeout time.Duration,
) *DatasetServiceImpl {
	return &DatasetServiceImpl{
		photoRepo: photoRepo,
		jobRepo:   jobRepo,
		queue:     queue,
		notifier:  notifier,
		timeout:   timeout,
	}
}

// SetQueue attaches the runner queue once the worker exists
func (s *DatasetServiceImpl) SetQueue(queue services.JobQueue) {
	s.queue = queue
}

func (s *DatasetServiceImpl) Start(ctx context.Context, sessionID uuid.UUID, folderPath string) (*models.DatasetJob, error) {
	folderPath = strings.TrimSpace(folderPath)
	if folderPath == "" {
		return nil, ErrEmptyFolderPath
	}

	job := &models.DatasetJob{
		ID:        uuid.New(),
		SessionID: sessionID,
		Folder:    folderPath,
		Status:    models.DatasetJobStatusPending,
		CreatedAt: time.Now(),
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create dataset job: %w", err)
	}

	if err := s.queue.Enqueue(job.ID); err != nil {
		s.settle(ctx, job, 0, err)
		return nil, fmt.Errorf("failed to queue dataset job: %w", err)
	}

	logger.Dataset("start", "Dataset job queued", map[string]interface{}{
		"job_id":      job.ID.String(),
		"session_id":  sessionID.String(),
		"folder_path": folderPath,
	})
	return job, nil
}

func (s *DatasetServiceImpl) Get(ctx context.Context, id uuid.UUID) (*models.DatasetJob, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

// Run calls the backend once and moves the job to its single terminal state
func (s *DatasetServiceImpl) Run(ctx context.Context, jobID uuid.UUID) error {
	job, err := s.Get(ctx, jobID)
	if err != nil {
		return err
	}
	if job.Status != models.DatasetJobStatusPending {
		return nil
	}

	now := time.Now()
	job.Status = models.DatasetJobStatusRunning
	job.StartedAt = &now
	if err := s.jobRepo.Update(ctx, job); err != nil {
		return fmt.Errorf("failed to mark job running: %w", err)
	}

	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	result, err := s.photoRepo.LoadDataset(callCtx, job.Folder)
	total := 0
	if result != nil {
		total = result.TotalProcessed
	}
	s.settle(ctx, job, total, err)
	return err
}

func (s *DatasetServiceImpl) settle(ctx context.Context, job *models.DatasetJob, total int, runErr error) {
	now := time.Now()
	job.CompletedAt = &now

	var n models.Notification
	if runErr != nil {
		job.Status = models.DatasetJobStatusFailed
		job.LastError = runErr.Error()
		n = models.NewErrorNotification("Failed to load dataset. Please try again.")
		logger.DatasetError("run", "Dataset ingestion failed", runErr, map[string]interface{}{
			"job_id":      job.ID.String(),
			"folder_path": job.Folder,
		})
	} else {
		job.Status = models.DatasetJobStatusCompleted
		job.TotalProcessed = total
		n = models.NewNotification("Dataset loaded",
			fmt.Sprintf("%d images processed from %s.", total, job.Folder))
		logger.Dataset("run", "Dataset ingestion completed", map[string]interface{}{
			"job_id":          job.ID.String(),
			"total_processed": total,
		})
	}

	if err := s.jobRepo.Update(context.WithoutCancel(ctx), job); err != nil {
		logger.DatasetError("settle", "Failed to record job outcome", err, map[string]interface{}{
			"job_id": job.ID.String(),
		})
	}
	metrics.IncDatasetJob(string(job.Status))
	metrics.IncNotification(string(n.Variant))
	if s.notifier != nil {
		s.notifier.Notify(job.SessionID, n)
	}
}

// Fail settles a job that never reached the backend
func (s *DatasetServiceImpl) Fail(ctx context.Context, jobID uuid.UUID, cause error) {
	job, err := s.Get(ctx, jobID)
	if err != nil || job.IsTerminal() {
		return
	}
	s.settle(ctx, job, 0, cause)
}
