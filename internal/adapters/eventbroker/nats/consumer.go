package nats

import (
	"context"
	"errors"
	"file-processor/internal/config"
	"file-processor/internal/core/port"
	"log/slog"
	"sync"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"golang.org/x/sync/errgroup"
)

// Consumer is a struct to interact with nats
type Consumer struct {
	logger      *slog.Logger
	conn        *nats.Conn
	js          jetstream.JetStream
	config      config.NATSConfig
	concurrency int
	iter        jetstream.MessagesContext
	wg          sync.WaitGroup
}

// NewNATSConsumer creates a new consumer handling at most concurrency messages at once
func NewNATSConsumer(cfg config.NATSConfig, concurrency int, logger *slog.Logger) (*Consumer, error) {
	conn, js, err := connect(cfg, cfg.ConsumerName, logger)
	if err != nil {
		return nil, err
	}

	if concurrency < 1 {
		concurrency = 1
	}

	return &Consumer{
		conn:        conn,
		js:          js,
		config:      cfg,
		concurrency: concurrency,
		logger:      logger,
	}, nil
}

// Subscribe subscribes to stream and handles messages
func (n *Consumer) Subscribe(ctx context.Context, handler port.MessageService) error {
	if err := ensureStream(ctx, n.js, n.config); err != nil {
		return err
	}

	consumerCfg := jetstream.ConsumerConfig{
		Durable:       n.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		FilterSubject: n.config.Subject,
		AckWait:       n.config.AckWait,
		MaxDeliver:    n.config.MaxDeliver,
		MaxAckPending: n.concurrency * 2,
	}

	cons, err := n.js.CreateOrUpdateConsumer(ctx, n.config.StreamName, consumerCfg)
	if err != nil {
		return err
	}

	iter, err := cons.Messages()
	if err != nil {
		return err
	}
	n.iter = iter

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		var g errgroup.Group
		g.SetLimit(n.concurrency)
		defer func() { _ = g.Wait() }()

		n.logger.Info("NATS subscription started", "concurrency", n.concurrency)
		for {
			select {
			case <-ctx.Done():
				n.logger.Info("NATS subscription stopped")
				return
			default:
				msg, err := iter.Next()
				if err != nil {
					if ctx.Err() != nil || errors.Is(err, jetstream.ErrMsgIteratorClosed) {
						n.logger.Info("NATS subscription stopped")
						return
					}
					n.logger.Error("failed to receive message", "error", err)
					return
				}

				g.Go(func() error {
					n.dispatch(ctx, handler, msg)
					return nil
				})
			}
		}
	}()
	return nil
}

func (n *Consumer) dispatch(ctx context.Context, handler port.MessageService, msg jetstream.Msg) {
	if handleErr := handler.HandleMessage(ctx, msg.Data()); handleErr != nil {
		if errNak := msg.Nak(); errNak != nil {
			n.logger.Error("failed to nak message", "error", errNak)
		}
		n.logger.Warn("failed to handle message", "error", handleErr)
		return
	}
	if ackErr := msg.Ack(); ackErr != nil {
		n.logger.Error("failed to ack message", "error", ackErr)
	}
}

// Close graceful shutdown
func (n *Consumer) Close() error {
	if n.iter != nil {
		n.iter.Stop()
	}

	n.wg.Wait()

	if n.conn != nil {
		n.conn.Close()
	}
	return nil
}
