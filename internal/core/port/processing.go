package port

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProcessingService advances one upload through its lifecycle
type ProcessingService interface {
	JobHandler
	MessageService
	ProcessUpload(ctx context.Context, fileID uuid.UUID) error
}

// SweeperService is service that resubmits uploads stuck in processing
type SweeperService interface {
	ResubmitStuck(ctx context.Context, now time.Time, threshold time.Duration) (int, error)
}
