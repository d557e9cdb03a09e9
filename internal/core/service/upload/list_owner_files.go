package upload

import (
	"context"
	"file-processor/internal/core/domain"

	"github.com/google/uuid"
)

// ListOwnerFiles reads through the owner file index cache. A cache hit is still
// filtered by owner against the store, and a fresh upload may stay hidden until
// the cached entry expires.
func (u *uploadService) ListOwnerFiles(ctx context.Context, ownerID uuid.UUID) ([]domain.UploadRecord, error) {
	if ids, ok := u.ownerFiles.Get(ownerID); ok {
		return u.uow.UploadRepo().FindByIDsForOwner(ctx, ids, ownerID)
	}

	records, err := u.uow.UploadRepo().FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	u.ownerFiles.Set(ownerID, ids)

	return records, nil
}
