package processing

import (
	"context"
	"errors"
	"file-processor/internal/core/domain"
	"fmt"
	"time"
)

// HandleJob runs a job to its end. Processing failures are logged and not returned,
// the upload stays processing and the sweeper submits it again later.
func (p *processingService) HandleJob(ctx context.Context, job domain.Job) error {
	if job.Type != domain.JobTypeProcessCSVFile {
		return fmt.Errorf("%w: %q", domain.ErrUnknownJobType, job.Type)
	}

	p.logger.Info("received job", "file_id", job.FileID, "enqueued_at", job.EnqueuedAt)

	start := time.Now()
	err := p.processUpload(ctx, job.FileID)
	jobDuration.Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		jobsTotal.WithLabelValues(outcomeCompleted).Inc()
	case errors.Is(err, domain.ErrUploadNotFound) && errors.Is(err, errSkipped):
		jobsTotal.WithLabelValues(outcomeMissing).Inc()
	case errors.Is(err, errSkipped):
		jobsTotal.WithLabelValues(outcomeSkipped).Inc()
	default:
		jobsTotal.WithLabelValues(outcomeFailed).Inc()
		p.logger.Error("processing failed", "file_id", job.FileID, "error", err)
	}

	return nil
}
