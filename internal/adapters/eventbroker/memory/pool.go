package memory

import (
	"context"
	"file-processor/internal/core/domain"
	"file-processor/internal/core/port"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Pool is an in-process bounded worker pool. It implements port.TaskQueue.
type Pool struct {
	logger  *slog.Logger
	handler port.JobHandler
	jobs    chan domain.Job
	group   *errgroup.Group

	mu     sync.RWMutex
	closed bool
}

// NewPool starts concurrency workers that run handler for every enqueued job.
// At most queueSize jobs wait for a free worker.
func NewPool(ctx context.Context, handler port.JobHandler, concurrency, queueSize int, logger *slog.Logger) *Pool {
	if concurrency < 1 {
		concurrency = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}

	p := &Pool{
		logger:  logger,
		handler: handler,
		jobs:    make(chan domain.Job, queueSize),
		group:   &errgroup.Group{},
	}

	for i := 0; i < concurrency; i++ {
		p.group.Go(func() error {
			for job := range p.jobs {
				p.run(ctx, job)
			}
			return nil
		})
	}

	logger.Info("worker pool started", "concurrency", concurrency, "queue_size", queueSize)
	return p
}

// Enqueue hands job to the pool without waiting for it to run
func (p *Pool) Enqueue(_ context.Context, job domain.Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return domain.ErrQueueClosed
	}

	select {
	case p.jobs <- job:
		return nil
	default:
		return fmt.Errorf("%w: job for %s", domain.ErrQueueFull, job.FileID)
	}
}

// Close stops accepting jobs and waits for queued and running ones to finish, or for ctx
func (p *Pool) Close(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.jobs)
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		_ = p.group.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.logger.Info("worker pool drained")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("worker pool drain: %w", ctx.Err())
	}
}

func (p *Pool) run(ctx context.Context, job domain.Job) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("job panicked", "file_id", job.FileID, "panic", r)
		}
	}()

	if err := p.handler.HandleJob(ctx, job); err != nil {
		p.logger.Error("job failed", "file_id", job.FileID, "error", err)
	}
}
