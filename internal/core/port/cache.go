package port

import "github.com/google/uuid"

// OwnerFileIndexCache is a short-lived, best-effort index of the file ids owned by a user.
// It is never a source of truth for ownership.
type OwnerFileIndexCache interface {
	Get(ownerID uuid.UUID) ([]uuid.UUID, bool)
	Set(ownerID uuid.UUID, fileIDs []uuid.UUID)
}
