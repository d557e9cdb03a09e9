package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UploadStatus represents the processing status of an uploaded file
type UploadStatus string

const (
	UploadStatusPending    UploadStatus = "pending"
	UploadStatusProcessing UploadStatus = "processing"
	UploadStatusCompleted  UploadStatus = "completed"
)

// Valid reports whether s is one of the known statuses
func (s UploadStatus) Valid() bool {
	switch s {
	case UploadStatusPending, UploadStatusProcessing, UploadStatusCompleted:
		return true
	default:
		return false
	}
}

// allowedPrevious lists, for every target status, the statuses a record may move from.
// Processing -> Processing is allowed so a resubmitted job re-stamps updated_at.
var allowedPrevious = map[UploadStatus][]UploadStatus{
	UploadStatusProcessing: {UploadStatusPending, UploadStatusProcessing},
	UploadStatusCompleted:  {UploadStatusProcessing},
}

// PreviousStatuses returns the statuses from which next can be reached
func PreviousStatuses(next UploadStatus) []UploadStatus {
	prev := allowedPrevious[next]
	out := make([]UploadStatus, len(prev))
	copy(out, prev)
	return out
}

// CanTransitionTo reports whether the state machine allows s -> next
func (s UploadStatus) CanTransitionTo(next UploadStatus) bool {
	for _, prev := range allowedPrevious[next] {
		if prev == s {
			return true
		}
	}
	return false
}

// UploadRecord represents one uploaded file and its processing state
type UploadRecord struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	FileRef   string
	Filename  string
	SizeBytes int64
	Status    UploadStatus
	Attempts  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUploadRecord builds a pending record with a fresh id
func NewUploadRecord(ownerID uuid.UUID, filename string, sizeBytes int64, now time.Time) UploadRecord {
	id := uuid.New()
	now = now.UTC()
	return UploadRecord{
		ID:        id,
		OwnerID:   ownerID,
		FileRef:   FileRefFor(id),
		Filename:  filename,
		SizeBytes: sizeBytes,
		Status:    UploadStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// FileRefFor returns the storage key of an upload
func FileRefFor(id uuid.UUID) string {
	return fmt.Sprintf("uploads/%s.csv", id.String())
}
