package domain

import (
	"time"

	"github.com/google/uuid"
)

// JobType is the kind of background job
type JobType string

const (
	JobTypeProcessCSVFile JobType = "process_csv_file"
)

// Job is a unit of background work keyed by an upload id
type Job struct {
	Type       JobType   `json:"type"`
	FileID     uuid.UUID `json:"fileId"`
	EnqueuedAt time.Time `json:"enqueuedAt"`
}

// NewProcessJob creates a processing job for fileID
func NewProcessJob(fileID uuid.UUID, now time.Time) Job {
	return Job{
		Type:       JobTypeProcessCSVFile,
		FileID:     fileID,
		EnqueuedAt: now.UTC(),
	}
}
