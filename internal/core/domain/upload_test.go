package domain_test

import (
	"file-processor/internal/core/domain"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from domain.UploadStatus
		to   domain.UploadStatus
		want bool
	}{
		{"pending to processing", domain.UploadStatusPending, domain.UploadStatusProcessing, true},
		{"processing to processing", domain.UploadStatusProcessing, domain.UploadStatusProcessing, true},
		{"processing to completed", domain.UploadStatusProcessing, domain.UploadStatusCompleted, true},
		{"pending to completed", domain.UploadStatusPending, domain.UploadStatusCompleted, false},
		{"completed to processing", domain.UploadStatusCompleted, domain.UploadStatusProcessing, false},
		{"completed to pending", domain.UploadStatusCompleted, domain.UploadStatusPending, false},
		{"processing to pending", domain.UploadStatusProcessing, domain.UploadStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestPreviousStatuses(t *testing.T) {
	t.Run("Returns a copy", func(t *testing.T) {
		prev := domain.PreviousStatuses(domain.UploadStatusProcessing)
		prev[0] = domain.UploadStatusCompleted

		assert.Equal(t,
			[]domain.UploadStatus{domain.UploadStatusPending, domain.UploadStatusProcessing},
			domain.PreviousStatuses(domain.UploadStatusProcessing))
	})

	t.Run("Nothing leads back to pending", func(t *testing.T) {
		assert.Empty(t, domain.PreviousStatuses(domain.UploadStatusPending))
	})
}

func TestUploadStatus_Valid(t *testing.T) {
	assert.True(t, domain.UploadStatusCompleted.Valid())
	assert.False(t, domain.UploadStatus("failed").Valid())
}

func TestNewUploadRecord(t *testing.T) {
	// Arrange
	ownerID := uuid.New()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))

	// Act
	record := domain.NewUploadRecord(ownerID, "data.csv", 42, now)

	// Assert
	require.NotEqual(t, uuid.Nil, record.ID)
	assert.Equal(t, domain.UploadStatusPending, record.Status)
	assert.Equal(t, "uploads/"+record.ID.String()+".csv", record.FileRef)
	assert.Equal(t, int64(42), record.SizeBytes)
	assert.Equal(t, 0, record.Attempts)
	assert.Equal(t, time.UTC, record.CreatedAt.Location())
	assert.True(t, record.CreatedAt.Equal(now))
	assert.Equal(t, record.CreatedAt, record.UpdatedAt)
	assert.Equal(t, ownerID, record.OwnerID)
}

func TestNewProcessJob(t *testing.T) {
	fileID := uuid.New()
	now := time.Now()

	job := domain.NewProcessJob(fileID, now)

	assert.Equal(t, domain.JobTypeProcessCSVFile, job.Type)
	assert.Equal(t, fileID, job.FileID)
	assert.True(t, job.EnqueuedAt.Equal(now))
}
