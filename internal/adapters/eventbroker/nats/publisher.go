package nats

import (
	"context"
	"encoding/json"
	"file-processor/internal/config"
	"file-processor/internal/core/domain"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// Publisher enqueues jobs on a JetStream stream. It implements port.TaskQueue.
type Publisher struct {
	logger *slog.Logger
	conn   *nats.Conn
	js     jetstream.JetStream
	config config.NATSConfig
}

// NewNATSPublisher connects to NATS and makes sure the job stream exists
func NewNATSPublisher(ctx context.Context, cfg config.NATSConfig, logger *slog.Logger) (*Publisher, error) {
	conn, js, err := connect(cfg, cfg.ConsumerName+"-publisher", logger)
	if err != nil {
		return nil, err
	}

	if err := ensureStream(ctx, js, cfg); err != nil {
		conn.Close()
		return nil, err
	}

	return &Publisher{
		conn:   conn,
		js:     js,
		config: cfg,
		logger: logger,
	}, nil
}

// Enqueue publishes job and waits for the stream acknowledgement only
func (p *Publisher) Enqueue(ctx context.Context, job domain.Job) error {
	if p.conn.IsClosed() {
		return domain.ErrQueueClosed
	}

	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	msgID := fmt.Sprintf("%s-%d", job.FileID, job.EnqueuedAt.UnixNano())
	ack, err := p.js.Publish(ctx, p.config.Subject, data, jetstream.WithMsgID(msgID))
	if err != nil {
		return fmt.Errorf("failed to publish job: %w", err)
	}

	p.logger.Debug("job published",
		slog.String("fileID", job.FileID.String()),
		slog.String("stream", ack.Stream),
		slog.Uint64("seq", ack.Sequence))

	return nil
}

// Close flushes pending publishes and closes the connection
func (p *Publisher) Close(ctx context.Context) error {
	if p.conn == nil || p.conn.IsClosed() {
		return nil
	}
	if err := p.conn.FlushWithContext(ctx); err != nil {
		p.logger.Warn("failed to flush NATS connection", "error", err)
	}
	p.conn.Close()
	return nil
}
