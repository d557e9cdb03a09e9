package port

import (
	"context"
	"file-processor/internal/core/domain"
)

// TaskQueue submits background jobs. Enqueue must not block on the job itself.
// Delivery is at-least-once, with no ordering guarantee.
type TaskQueue interface {
	Enqueue(ctx context.Context, job domain.Job) error
	Close(ctx context.Context) error
}

// JobHandler runs one job
type JobHandler interface {
	HandleJob(ctx context.Context, job domain.Job) error
}

// EventConsumer is an interface to define a job consumer (nats, ...)
type EventConsumer interface {
	Subscribe(ctx context.Context, handler MessageService) error
	Close() error
}

// MessageService is an interface to define message handling
type MessageService interface {
	HandleMessage(ctx context.Context, data []byte) error
}
