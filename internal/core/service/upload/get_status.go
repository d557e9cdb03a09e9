package upload

import (
	"context"
	"file-processor/internal/core/domain"

	"github.com/google/uuid"
)

func (u *uploadService) GetStatus(ctx context.Context, fileID uuid.UUID, ownerID uuid.UUID) (*domain.UploadRecord, error) {
	return u.uow.UploadRepo().FindByIDForOwner(ctx, fileID, ownerID)
}
