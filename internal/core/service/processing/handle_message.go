package processing

import (
	"context"
	"encoding/json"
	"file-processor/internal/core/domain"
	"fmt"

	"github.com/google/uuid"
)

// HandleMessage decodes a job delivered by the broker. Only undecodable messages are
// reported back, so that the broker can redeliver them.
func (p *processingService) HandleMessage(ctx context.Context, data []byte) error {
	var job domain.Job
	if err := json.Unmarshal(data, &job); err != nil {
		p.logger.Warn("invalid job payload", "error", err)
		return fmt.Errorf("invalid job payload: %w", err)
	}

	if job.FileID == uuid.Nil {
		return fmt.Errorf("invalid job payload: missing fileId")
	}

	return p.HandleJob(ctx, job)
}
