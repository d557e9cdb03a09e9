package sweeper

import (
	"file-processor/internal/core/port"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var resubmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "file_processor_sweeper_resubmitted_total",
	Help: "Uploads found stuck in processing and submitted again.",
})

type sweeperService struct {
	uow    port.UnitOfWork
	queue  port.TaskQueue
	logger *slog.Logger
}

// NewSweeperService creates a new sweeper service
func NewSweeperService(uow port.UnitOfWork, queue port.TaskQueue, logger *slog.Logger) port.SweeperService {
	return &sweeperService{
		uow:    uow,
		queue:  queue,
		logger: logger,
	}
}
