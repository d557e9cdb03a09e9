package sweeper

import (
	"context"
	"file-processor/internal/core/domain"
	"fmt"
	"time"
)

// ResubmitStuck enqueues a new job for every upload left in processing since before
// now-threshold. Records are not modified, the worker re-stamps them when it picks
// the job up.
func (s *sweeperService) ResubmitStuck(ctx context.Context, now time.Time, threshold time.Duration) (int, error) {

	stuck, err := s.uow.UploadRepo().FindStale(ctx, domain.UploadStatusProcessing, now.Add(-threshold))
	if err != nil {
		return 0, fmt.Errorf("could not find stuck uploads: %w", err)
	}

	if len(stuck) == 0 {
		s.logger.Info("no stuck files found")
		return 0, nil
	}

	s.logger.Warn("retrying stuck files", "count", len(stuck))

	resubmitted := 0
	for _, record := range stuck {
		if err := ctx.Err(); err != nil {
			resubmittedTotal.Add(float64(resubmitted))
			return resubmitted, err
		}

		s.logger.Warn("retrying file", "file_id", record.ID, "attempts", record.Attempts, "updated_at", record.UpdatedAt)
		if err := s.queue.Enqueue(ctx, domain.NewProcessJob(record.ID, now)); err != nil {
			s.logger.Error("failed to resubmit file", "file_id", record.ID, "error", err)
			continue
		}
		resubmitted++
	}

	resubmittedTotal.Add(float64(resubmitted))
	return resubmitted, nil
}
