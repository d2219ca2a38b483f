package serviceimpl

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photo-dashboard/domain/models"
	"photo-dashboard/domain/repositories"
	"photo-dashboard/domain/services"
	"photo-dashboard/infrastructure/memory"
	"photo-dashboard/infrastructure/worker"
)

type recordingQueue struct {
	ids []uuid.UUID
	err error
}

func (q *recordingQueue) Enqueue(id uuid.UUID) error {
	if q.err != nil {
		return q.err
	}
	q.ids = append(q.ids, id)
	return nil
}

func newTestDatasetService(photos *fakePhotoRepo, queue services.JobQueue) (*DatasetServiceImpl, *recordingNotifier) {
	notifier := newRecordingNotifier()
	return NewDatasetService(photos, memory.NewDatasetJobRepository(), queue, notifier, 0), notifier
}

func TestDatasetJobCompletes(t *testing.T) {
	photos := &fakePhotoRepo{
		datasetFn: func(ctx context.Context, folder string) (*models.DatasetResult, error) {
			return &models.DatasetResult{TotalProcessed: 250}, nil
		},
	}
	queue := &recordingQueue{}
	svc, notifier := newTestDatasetService(photos, queue)
	ctx := context.Background()
	session := uuid.New()

	job, err := svc.Start(ctx, session, " /data/2023 ")
	require.NoError(t, err)
	assert.Equal(t, models.DatasetJobStatusPending, job.Status)
	assert.Equal(t, "/data/2023", job.Folder)
	require.Equal(t, []uuid.UUID{job.ID}, queue.ids)

	require.NoError(t, svc.Run(ctx, job.ID))

	got, err := svc.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DatasetJobStatusCompleted, got.Status)
	assert.Equal(t, 250, got.TotalProcessed)
	assert.NotNil(t, got.StartedAt)
	assert.NotNil(t, got.CompletedAt)

	require.NoError(t, svc.Run(ctx, job.ID), "settled job is not run again")

	sent := notifier.For(session)
	require.Len(t, sent, 1)
	assert.Equal(t, "Dataset loaded", sent[0].Title)
}

func TestDatasetJobFailsOnce(t *testing.T) {
	photos := &fakePhotoRepo{
		datasetFn: func(ctx context.Context, folder string) (*models.DatasetResult, error) {
			return nil, &repositories.BackendError{Operation: "load_dataset", Status: 500, Message: "folder missing"}
		},
	}
	svc, notifier := newTestDatasetService(photos, &recordingQueue{})
	ctx := context.Background()
	session := uuid.New()

	job, err := svc.Start(ctx, session, "/missing")
	require.NoError(t, err)

	err = svc.Run(ctx, job.ID)
	assert.True(t, repositories.IsBackendError(err))

	got, err := svc.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DatasetJobStatusFailed, got.Status)
	assert.Contains(t, got.LastError, "folder missing")

	svc.Fail(ctx, job.ID, errors.New("late"))
	sent := notifier.For(session)
	require.Len(t, sent, 1)
	assert.Equal(t, models.NotificationDestructive, sent[0].Variant)
}

func TestDatasetStartValidation(t *testing.T) {
	svc, _ := newTestDatasetService(&fakePhotoRepo{}, &recordingQueue{})

	_, err := svc.Start(context.Background(), uuid.New(), "   ")
	assert.ErrorIs(t, err, ErrEmptyFolderPath)

	_, err = svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, services.ErrJobNotFound)
}

func TestDatasetQueueRejection(t *testing.T) {
	svc, notifier := newTestDatasetService(&fakePhotoRepo{}, &recordingQueue{err: worker.ErrQueueFull})
	session := uuid.New()

	_, err := svc.Start(context.Background(), session, "/data")
	assert.ErrorIs(t, err, worker.ErrQueueFull)
	require.Len(t, notifier.For(session), 1)
}

func TestDatasetWorkerRunsJob(t *testing.T) {
	photos := &fakePhotoRepo{
		datasetFn: func(ctx context.Context, folder string) (*models.DatasetResult, error) {
			return &models.DatasetResult{TotalProcessed: 3}, nil
		},
	}
	w := worker.NewDatasetWorker(4, 1)
	svc, _ := newTestDatasetService(photos, w)
	w.Start(svc.Run, svc.Fail)
	defer w.Stop()

	job, err := svc.Start(context.Background(), uuid.New(), "/data")
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		got, err := svc.Get(context.Background(), job.ID)
		return err == nil && got.IsTerminal()
	}, timeout, tick)

	got, _ := svc.Get(context.Background(), job.ID)
	assert.Equal(t, models.DatasetJobStatusCompleted, got.Status)
	assert.Equal(t, 3, got.TotalProcessed)
}
