package postgres_test

import (
	"context"
	"file-processor/internal/adapters/repository/postgres"
	"file-processor/internal/core/domain"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSqlUploadRepository(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()
	ctx := context.Background()
	repo := postgres.NewSqlUploadRepository(dbConnection)

	newRecord := func(t *testing.T, ownerID uuid.UUID, createdAt time.Time) domain.UploadRecord {
		t.Helper()
		record := domain.NewUploadRecord(ownerID, "test.csv", 20, createdAt)
		require.NoError(t, repo.Create(ctx, record))
		return record
	}

	t.Run("Create - Success", func(t *testing.T) {
		// Arrange
		truncate()
		ownerID := postgres.InsertTestUser(t, dbConnection, "owner@example.com")
		record := domain.NewUploadRecord(ownerID, "test.csv", 20, time.Now())

		// Act
		err := repo.Create(ctx, record)

		// Assert
		require.NoError(t, err)
		found, err := repo.FindByID(ctx, record.ID)
		require.NoError(t, err)
		require.Equal(t, record.ID, found.ID)
		require.Equal(t, ownerID, found.OwnerID)
		require.Equal(t, domain.UploadStatusPending, found.Status)
		require.Equal(t, record.FileRef, found.FileRef)
		require.Equal(t, 0, found.Attempts)
	})

	t.Run("Create - Duplicate id", func(t *testing.T) {
		// Arrange
		truncate()
		ownerID := postgres.InsertTestUser(t, dbConnection, "owner@example.com")
		record := newRecord(t, ownerID, time.Now())

		// Act
		err := repo.Create(ctx, record)

		// Assert
		require.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("FindByID - Not Found", func(t *testing.T) {
		// Arrange
		truncate()

		// Act
		record, err := repo.FindByID(ctx, uuid.New())

		// Assert
		require.Nil(t, record)
		require.ErrorIs(t, err, domain.ErrUploadNotFound)
	})

	t.Run("FindByIDForOwner - Foreign record is not found", func(t *testing.T) {
		// Arrange
		truncate()
		ownerID := postgres.InsertTestUser(t, dbConnection, "owner@example.com")
		otherID := postgres.InsertTestUser(t, dbConnection, "other@example.com")
		record := newRecord(t, ownerID, time.Now())

		// Act
		_, errOther := repo.FindByIDForOwner(ctx, record.ID, otherID)
		found, errOwner := repo.FindByIDForOwner(ctx, record.ID, ownerID)

		// Assert
		require.ErrorIs(t, errOther, domain.ErrUploadNotFound)
		require.NoError(t, errOwner)
		require.Equal(t, record.ID, found.ID)
	})

	t.Run("FindByOwner - Newest first", func(t *testing.T) {
		// Arrange
		truncate()
		ownerID := postgres.InsertTestUser(t, dbConnection, "owner@example.com")
		otherID := postgres.InsertTestUser(t, dbConnection, "other@example.com")
		older := newRecord(t, ownerID, time.Now().Add(-time.Hour))
		newer := newRecord(t, ownerID, time.Now())
		_ = newRecord(t, otherID, time.Now())

		// Act
		records, err := repo.FindByOwner(ctx, ownerID)

		// Assert
		require.NoError(t, err)
		require.Len(t, records, 2)
		require.Equal(t, newer.ID, records[0].ID)
		require.Equal(t, older.ID, records[1].ID)
	})

	t.Run("FindByIDsForOwner - Keeps order and filters owner", func(t *testing.T) {
		// Arrange
		truncate()
		ownerID := postgres.InsertTestUser(t, dbConnection, "owner@example.com")
		otherID := postgres.InsertTestUser(t, dbConnection, "other@example.com")
		a := newRecord(t, ownerID, time.Now())
		b := newRecord(t, ownerID, time.Now())
		foreign := newRecord(t, otherID, time.Now())

		// Act
		records, err := repo.FindByIDsForOwner(ctx, []uuid.UUID{b.ID, foreign.ID, a.ID, uuid.New()}, ownerID)

		// Assert
		require.NoError(t, err)
		require.Len(t, records, 2)
		require.Equal(t, b.ID, records[0].ID)
		require.Equal(t, a.ID, records[1].ID)
	})

	t.Run("UpdateStatus - Pending to processing counts an attempt", func(t *testing.T) {
		// Arrange
		truncate()
		ownerID := postgres.InsertTestUser(t, dbConnection, "owner@example.com")
		record := newRecord(t, ownerID, time.Now().Add(-time.Hour))

		// Act
		err := repo.UpdateStatus(ctx, record.ID, domain.PreviousStatuses(domain.UploadStatusProcessing), domain.UploadStatusProcessing)

		// Assert
		require.NoError(t, err)
		found, err := repo.FindByID(ctx, record.ID)
		require.NoError(t, err)
		require.Equal(t, domain.UploadStatusProcessing, found.Status)
		require.Equal(t, 1, found.Attempts)
		require.True(t, found.UpdatedAt.After(record.UpdatedAt))
	})

	t.Run("UpdateStatus - Completed cannot go back", func(t *testing.T) {
		// Arrange
		truncate()
		ownerID := postgres.InsertTestUser(t, dbConnection, "owner@example.com")
		record := newRecord(t, ownerID, time.Now())
		require.NoError(t, repo.UpdateStatus(ctx, record.ID, domain.PreviousStatuses(domain.UploadStatusProcessing), domain.UploadStatusProcessing))
		require.NoError(t, repo.UpdateStatus(ctx, record.ID, domain.PreviousStatuses(domain.UploadStatusCompleted), domain.UploadStatusCompleted))

		// Act
		err := repo.UpdateStatus(ctx, record.ID, domain.PreviousStatuses(domain.UploadStatusProcessing), domain.UploadStatusProcessing)

		// Assert
		require.ErrorIs(t, err, domain.ErrInvalidTransition)
		found, _ := repo.FindByID(ctx, record.ID)
		require.Equal(t, domain.UploadStatusCompleted, found.Status)
	})

	t.Run("UpdateStatus - Not Found", func(t *testing.T) {
		// Arrange
		truncate()

		// Act
		err := repo.UpdateStatus(ctx, uuid.New(), domain.PreviousStatuses(domain.UploadStatusProcessing), domain.UploadStatusProcessing)

		// Assert
		require.ErrorIs(t, err, domain.ErrUploadNotFound)
	})

	t.Run("FindStale - Only old processing records", func(t *testing.T) {
		// Arrange
		truncate()
		ownerID := postgres.InsertTestUser(t, dbConnection, "owner@example.com")

		stuck := domain.NewUploadRecord(ownerID, "stuck.csv", 10, time.Now().Add(-31*time.Minute))
		stuck.Status = domain.UploadStatusProcessing
		require.NoError(t, repo.Create(ctx, stuck))

		recent := domain.NewUploadRecord(ownerID, "recent.csv", 10, time.Now().Add(-5*time.Minute))
		recent.Status = domain.UploadStatusProcessing
		require.NoError(t, repo.Create(ctx, recent))

		oldPending := domain.NewUploadRecord(ownerID, "pending.csv", 10, time.Now().Add(-time.Hour))
		require.NoError(t, repo.Create(ctx, oldPending))

		// Act
		records, err := repo.FindStale(ctx, domain.UploadStatusProcessing, time.Now().Add(-30*time.Minute))

		// Assert
		require.NoError(t, err)
		require.Len(t, records, 1)
		require.Equal(t, stuck.ID, records[0].ID)
	})

	t.Run("Delete - Success", func(t *testing.T) {
		// Arrange
		truncate()
		ownerID := postgres.InsertTestUser(t, dbConnection, "owner@example.com")
		record := newRecord(t, ownerID, time.Now())

		// Act
		err := repo.Delete(ctx, record.ID)

		// Assert
		require.NoError(t, err)
		_, err = repo.FindByID(ctx, record.ID)
		require.ErrorIs(t, err, domain.ErrUploadNotFound)
		require.ErrorIs(t, repo.Delete(ctx, record.ID), domain.ErrUploadNotFound)
	})
}
