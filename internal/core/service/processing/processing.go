package processing

import (
	"file-processor/internal/core/port"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeCompleted = "completed"
	outcomeSkipped   = "skipped"
	outcomeMissing   = "missing"
	outcomeFailed    = "failed"
)

var (
	jobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "file_processor_jobs_total",
		Help: "Processing jobs by outcome.",
	}, []string{"outcome"})
	jobDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "file_processor_job_duration_seconds",
		Help:    "Time spent running one processing job.",
		Buckets: prometheus.DefBuckets,
	})
)

const (
	notificationSubject = "Your file has been processed"
	notificationBody    = "Hello %s,\n\nYour uploaded CSV file '%s' has been successfully processed."
)

type processingService struct {
	uow         port.UnitOfWork
	fileStorage port.FileStorage
	notifier    port.Notifier
	logger      *slog.Logger
}

// NewProcessingService creates the service run by workers for every process_csv_file job
func NewProcessingService(uow port.UnitOfWork, fileStorage port.FileStorage, notifier port.Notifier, logger *slog.Logger) port.ProcessingService {
	return &processingService{
		uow:         uow,
		fileStorage: fileStorage,
		notifier:    notifier,
		logger:      logger,
	}
}
