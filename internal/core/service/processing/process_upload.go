package processing

import (
	"context"
	"errors"
	"file-processor/internal/core/domain"
	"fmt"

	"github.com/google/uuid"
)

// errSkipped marks an execution that ended without doing work
var errSkipped = errors.New("skipped")

// ProcessUpload moves one upload pending -> processing -> completed and notifies its owner.
// Running it again on a completed upload is deliberately a no-op: status never moves backwards
// and the owner is notified once.
func (p *processingService) ProcessUpload(ctx context.Context, fileID uuid.UUID) error {
	err := p.processUpload(ctx, fileID)
	if errors.Is(err, errSkipped) {
		return nil
	}
	return err
}

func (p *processingService) processUpload(ctx context.Context, fileID uuid.UUID) error {
	logger := p.logger.With("file_id", fileID)
	repo := p.uow.UploadRepo()

	record, err := repo.FindByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, domain.ErrUploadNotFound) {
			logger.Error("record missing")
			return fmt.Errorf("%w: %w", errSkipped, err)
		}
		return fmt.Errorf("could not load upload: %w", err)
	}

	if !record.Status.CanTransitionTo(domain.UploadStatusProcessing) {
		logger.Info("upload already completed", "status", record.Status)
		return errSkipped
	}

	logger.Info("updating status", "status", domain.UploadStatusProcessing, "attempt", record.Attempts+1)
	err = repo.UpdateStatus(ctx, fileID, domain.PreviousStatuses(domain.UploadStatusProcessing), domain.UploadStatusProcessing)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			logger.Info("upload completed by another execution")
			return errSkipped
		}
		if errors.Is(err, domain.ErrUploadNotFound) {
			logger.Error("record missing")
			return fmt.Errorf("%w: %w", errSkipped, err)
		}
		return fmt.Errorf("could not mark upload processing: %w", err)
	}

	stats, err := p.readCSV(ctx, record.FileRef)
	if err != nil {
		return fmt.Errorf("could not process %s: %w", record.FileRef, err)
	}
	logger.Info("csv processed", "rows", stats.Rows, "columns", stats.Columns)

	err = repo.UpdateStatus(ctx, fileID, domain.PreviousStatuses(domain.UploadStatusCompleted), domain.UploadStatusCompleted)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			logger.Info("upload completed by another execution")
			return errSkipped
		}
		return fmt.Errorf("could not mark upload completed: %w", err)
	}
	logger.Info("updating status", "status", domain.UploadStatusCompleted)

	return p.notifyOwner(ctx, record)
}

func (p *processingService) notifyOwner(ctx context.Context, record *domain.UploadRecord) error {
	owner, err := p.uow.UserRepo().FindByID(ctx, record.OwnerID)
	if err != nil {
		return fmt.Errorf("could not load owner %s: %w", record.OwnerID, err)
	}

	p.logger.Info("sending email", "file_id", record.ID, "to", owner.Email)
	body := fmt.Sprintf(notificationBody, owner.Username, record.ID)
	if err := p.notifier.Send(ctx, owner.Email, notificationSubject, body); err != nil {
		return fmt.Errorf("could not notify owner: %w", err)
	}
	return nil
}
