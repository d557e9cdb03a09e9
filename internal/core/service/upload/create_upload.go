package upload

import (
	"context"
	"errors"
	"file-processor/internal/core/domain"
	"file-processor/internal/core/port"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

const csvContentType = "text/csv"

func (u *uploadService) CreateUpload(ctx context.Context, ownerID uuid.UUID, filename string, sizeBytes int64, content io.Reader) (*domain.UploadRecord, error) {

	if err := u.validateFile(filename, sizeBytes); err != nil {
		return nil, err
	}

	record := domain.NewUploadRecord(ownerID, filename, sizeBytes, time.Now())

	if err := u.fileStorage.PutObject(ctx, record.FileRef, content, sizeBytes, csvContentType); err != nil {
		return nil, fmt.Errorf("could not store upload: %w", err)
	}

	txErr := u.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		return uow.UploadRepo().Create(ctx, record)
	})
	if txErr != nil {
		u.removeObject(ctx, record)
		return nil, fmt.Errorf("could not create upload: %w", txErr)
	}

	// enqueue only once the record is committed, a worker must always find it
	if err := u.queue.Enqueue(ctx, domain.NewProcessJob(record.ID, time.Now())); err != nil {
		u.logger.Error("failed to enqueue upload, rolling back", "file_id", record.ID, "error", err)

		if delErr := u.uow.UploadRepo().Delete(ctx, record.ID); delErr != nil && !errors.Is(delErr, domain.ErrUploadNotFound) {
			u.logger.Error("failed to delete unscheduled upload", "file_id", record.ID, "error", delErr)
		}
		u.removeObject(ctx, record)

		return nil, fmt.Errorf("%w: %w", domain.ErrEnqueueFailed, err)
	}

	u.logger.Info("upload accepted", "file_id", record.ID, "owner_id", ownerID, "size", sizeBytes)
	return &record, nil
}

func (u *uploadService) removeObject(ctx context.Context, record domain.UploadRecord) {
	if err := u.fileStorage.DeleteObject(ctx, record.FileRef); err != nil {
		u.logger.Error("failed to delete orphan object", "file_id", record.ID, "file_ref", record.FileRef, "error", err)
	}
}
