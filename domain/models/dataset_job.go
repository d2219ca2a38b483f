package models

import (
	"time"

	"github.com/google/uuid"
)

type DatasetJobStatus string

const (
	DatasetJobStatusPending   DatasetJobStatus = "pending"
	DatasetJobStatusRunning   DatasetJobStatus = "running"
	DatasetJobStatusCompleted DatasetJobStatus = "completed"
	DatasetJobStatusFailed    DatasetJobStatus = "failed"
)

// DatasetJob tracks one backend-side bulk ingestion. It ends in exactly one terminal state.
type DatasetJob struct {
	ID        uuid.UUID        `json:"id"`
	SessionID uuid.UUID        `json:"session_id"`
	Folder    string           `json:"folder_path"`
	Status    DatasetJobStatus `json:"status"`

	TotalProcessed int    `json:"total_processed"`
	LastError      string `json:"last_error,omitempty"`

	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// IsTerminal reports whether the job has completed or failed
func (j DatasetJob) IsTerminal() bool {
	return j.Status == DatasetJobStatusCompleted || j.Status == DatasetJobStatusFailed
}

// DatasetResult is the backend's ingestion report
type DatasetResult struct {
	TotalProcessed int `json:"total_processed"`
}
