package postgres

import (
	"file-processor/internal/core/domain"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestDbUploadRecord_ToDomain(t *testing.T) {
	row := dbUploadRecord{
		ID:        uuid.New(),
		OwnerID:   uuid.New(),
		FileRef:   "uploads/x.csv",
		Filename:  "x.csv",
		SizeBytes: 3,
		Status:    "processing",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	t.Run("Known status", func(t *testing.T) {
		record, err := row.ToDomain()

		require.NoError(t, err)
		require.Equal(t, domain.UploadStatusProcessing, record.Status)
		require.Equal(t, time.UTC, record.CreatedAt.Location())
	})

	t.Run("Unknown status is rejected", func(t *testing.T) {
		bad := row
		bad.Status = "failed"

		record, err := bad.ToDomain()

		require.Nil(t, record)
		require.ErrorContains(t, err, `unknown status "failed"`)
	})
}
