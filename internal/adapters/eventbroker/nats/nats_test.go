package nats_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	nats2 "file-processor/internal/adapters/eventbroker/nats"
	"file-processor/internal/config"
	"file-processor/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type mockHandler struct {
	messages [][]byte
	received chan struct{}
	err      error
	mu       sync.Mutex
}

func (m *mockHandler) HandleMessage(ctx context.Context, data []byte) error {
	m.mu.Lock()
	m.messages = append(m.messages, data)
	m.mu.Unlock()

	if m.received != nil {
		m.received <- struct{}{}
	}
	return m.err
}

func (m *mockHandler) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.messages)
}

func setupNATSContainer(t *testing.T) (string, func()) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "nats:2.10-alpine",
		ExposedPorts: []string{"4222/tcp"},
		Cmd:          []string{"-js"},
		WaitingFor:   wait.ForLog("Server is ready"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "4222")
	require.NoError(t, err)

	cleanup := func() {
		_ = container.Terminate(ctx)
	}

	return "nats://" + host + ":" + port.Port(), cleanup
}

func testConfig(natsURL, name string) config.NATSConfig {
	return config.NATSConfig{
		URL:          natsURL,
		StreamName:   name + "-stream",
		Subject:      name + ".jobs",
		ConsumerName: name + "-worker",
		AckWait:      2 * time.Second,
		MaxDeliver:   5,
	}
}

func TestPublisherConsumer_RoundTrip(t *testing.T) {
	// Arrange
	natsURL, cleanup := setupNATSContainer(t)
	defer cleanup()

	cfg := testConfig(natsURL, "roundtrip")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	publisher, err := nats2.NewNATSPublisher(ctx, cfg, logger)
	require.NoError(t, err)
	defer publisher.Close(ctx)

	consumer, err := nats2.NewNATSConsumer(cfg, 2, logger)
	require.NoError(t, err)
	defer consumer.Close()

	handler := &mockHandler{received: make(chan struct{}, 1)}
	job := domain.NewProcessJob(uuid.New(), time.Now())

	// Act
	require.NoError(t, consumer.Subscribe(ctx, handler))
	require.NoError(t, publisher.Enqueue(ctx, job))

	select {
	case <-handler.received:
	case <-time.After(5 * time.Second):
		t.Fatal("message not received")
	}

	// Assert
	require.Equal(t, 1, handler.count())
	var got domain.Job
	require.NoError(t, json.Unmarshal(handler.messages[0], &got))
	assert.Equal(t, domain.JobTypeProcessCSVFile, got.Type)
	assert.Equal(t, job.FileID, got.FileID)
}

func TestConsumer_Subscribe_HandlerErrorRedelivers(t *testing.T) {
	// Arrange
	natsURL, cleanup := setupNATSContainer(t)
	defer cleanup()

	cfg := testConfig(natsURL, "retry")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	publisher, err := nats2.NewNATSPublisher(ctx, cfg, logger)
	require.NoError(t, err)
	defer publisher.Close(ctx)

	consumer, err := nats2.NewNATSConsumer(cfg, 1, logger)
	require.NoError(t, err)
	defer consumer.Close()

	handler := &mockHandler{
		received: make(chan struct{}, 3),
		err:      assert.AnError,
	}

	// Act
	require.NoError(t, consumer.Subscribe(ctx, handler))
	require.NoError(t, publisher.Enqueue(ctx, domain.NewProcessJob(uuid.New(), time.Now())))

	// Assert
	for i := 0; i < 3; i++ {
		select {
		case <-handler.received:
		case <-time.After(5 * time.Second):
			t.Fatalf("Retry %d not received", i)
		}
	}
	assert.GreaterOrEqual(t, handler.count(), 3)
}

func TestConsumer_GracefulShutdown(t *testing.T) {
	// Arrange
	natsURL, cleanup := setupNATSContainer(t)
	defer cleanup()

	cfg := testConfig(natsURL, "shutdown")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	publisher, err := nats2.NewNATSPublisher(ctx, cfg, logger)
	require.NoError(t, err)
	defer publisher.Close(ctx)

	handler := &mockHandler{received: make(chan struct{}, 1)}
	consumer, err := nats2.NewNATSConsumer(cfg, 1, logger)
	require.NoError(t, err)

	// Act
	require.NoError(t, consumer.Subscribe(ctx, handler))
	require.NoError(t, consumer.Close())
	require.NoError(t, publisher.Enqueue(ctx, domain.NewProcessJob(uuid.New(), time.Now())))

	// Assert
	select {
	case <-handler.received:
		t.Fatal("Message should not have been processed after Close")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestPublisher_EnqueueAfterClose(t *testing.T) {
	// Arrange
	natsURL, cleanup := setupNATSContainer(t)
	defer cleanup()

	cfg := testConfig(natsURL, "closed")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	publisher, err := nats2.NewNATSPublisher(ctx, cfg, logger)
	require.NoError(t, err)
	require.NoError(t, publisher.Close(ctx))

	// Act
	err = publisher.Enqueue(ctx, domain.NewProcessJob(uuid.New(), time.Now()))

	// Assert
	require.ErrorIs(t, err, domain.ErrQueueClosed)
}
