package main

import (
	"context"
	"file-processor/internal/adapters/eventbroker/nats"
	"file-processor/internal/adapters/notifier/smtp"
	"file-processor/internal/adapters/repository/postgres"
	"file-processor/internal/adapters/storage/minio"
	"file-processor/internal/config"
	"file-processor/internal/core/service/processing"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Load config
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))

	// Initialize database
	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()
	logger.Info("db connection established")

	minioAdapter, err := minio.NewAdapter(ctx, cfg.Minio, logger)
	if err != nil {
		logger.Error("failed to init minio", "error", err)
		os.Exit(1)
	}
	logger.Info("minio adapter initialized")

	// Initialize services
	unitOfWork := postgres.NewUnitOfWork(db)
	mailer := smtp.NewMailer(cfg.Mail, logger)
	processingService := processing.NewProcessingService(unitOfWork, minioAdapter, mailer, logger)

	// Initialize NATS consumer
	natsConsumer, err := nats.NewNATSConsumer(cfg.NATS, cfg.Worker.Concurrency, logger)
	if err != nil {
		logger.Error("failed to create NATS consumer", "error", err)
		os.Exit(1)
	}
	logger.Info("NATS consumer initialized", "concurrency", cfg.Worker.Concurrency)

	// in-flight jobs are not canceled by the signal, Close stops the subscription
	if err := natsConsumer.Subscribe(context.WithoutCancel(ctx), processingService); err != nil {
		logger.Error("failed to subscribe to NATS", "error", err)
		os.Exit(1)
	}
	logger.Info("NATS subscription active")

	// Wait for termination signal
	<-ctx.Done()
	logger.Info("gracefully shutting down worker")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	done := make(chan struct{})
	go func() {
		if err := natsConsumer.Close(); err != nil {
			logger.Error("failed to close NATS consumer during shutdown", "error", err)
		}
		close(done)
	}()

	select {
	case <-done:
		logger.Info("worker shutdown complete")
	case <-shutdownCtx.Done():
		logger.Warn("shutdown timeout exceeded, unacked jobs will be redelivered")
	}
}
