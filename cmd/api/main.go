package main

import (
	"context"
	"errors"
	"file-processor/internal/adapters/auth"
	"file-processor/internal/adapters/cache/lru"
	"file-processor/internal/adapters/eventbroker/memory"
	"file-processor/internal/adapters/eventbroker/nats"
	"file-processor/internal/adapters/handlers/http/chi"
	"file-processor/internal/adapters/handlers/http/chi/v1/upload"
	"file-processor/internal/adapters/notifier/smtp"
	"file-processor/internal/adapters/repository/postgres"
	"file-processor/internal/adapters/storage/minio"
	"file-processor/internal/config"
	"file-processor/internal/core/port"
	"file-processor/internal/core/service/processing"
	"file-processor/internal/core/service/sweeper"
	uploadservice "file-processor/internal/core/service/upload"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
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

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))

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

	//storage
	minioAdapter, err := minio.NewAdapter(ctx, cfg.Minio, logger)
	if err != nil {
		logger.Error("failed to init minio", "error", err)
		os.Exit(1)
	}

	//repositories
	unitOfWork := postgres.NewUnitOfWork(db)

	//queue
	queue, err := initQueue(ctx, cfg, unitOfWork, minioAdapter, logger)
	if err != nil {
		logger.Error("failed to init task queue", "driver", cfg.Worker.QueueDriver, "error", err)
		os.Exit(1)
	}
	logger.Info("task queue initialized", "driver", cfg.Worker.QueueDriver)

	//services
	ownerFiles := lru.NewOwnerFiles(cfg.Cache.OwnerFilesSize, cfg.Cache.OwnerFilesTTL)
	uploadService := uploadservice.NewUploadService(unitOfWork, minioAdapter, queue, ownerFiles, cfg.Upload, logger)
	sweeperService := sweeper.NewSweeperService(unitOfWork, queue, logger)

	//http
	uploadHandler := upload.NewUploadHandlerV1(uploadService, logger)
	verifier := auth.NewJWT(cfg.Auth.JWTSecret, cfg.Auth.Issuer)

	router := chi.NewRouter(logger, uploadHandler, verifier, chi.RouterOptions{
		Env:            cfg.Env.Env,
		MaxRequestSize: cfg.Server.MaxRequestSize,
	})
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	// init sweeper task
	wg.Add(1)
	go func() {
		defer wg.Done()
		initSweeperTask(ctx, sweeperService, cfg.Sweeper, logger)
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()

	if err := queue.Close(shutdownCtx); err != nil {
		logger.Error("failed to close task queue", "error", err)
	}
	logger.Info("app shutdown complete")

}

// initQueue builds the task queue selected by QUEUE_DRIVER. With the memory driver
// jobs run inside this process, so the processing side is wired here too.
func initQueue(
	ctx context.Context,
	cfg *config.Config,
	uow port.UnitOfWork,
	fileStorage port.FileStorage,
	logger *slog.Logger,
) (port.TaskQueue, error) {
	switch cfg.Worker.QueueDriver {
	case "nats":
		publisher, err := nats.NewNATSPublisher(ctx, cfg.NATS, logger)
		if err != nil {
			return nil, err
		}
		return publisher, nil
	case "memory":
		mailer := smtp.NewMailer(cfg.Mail, logger)
		processingService := processing.NewProcessingService(uow, fileStorage, mailer, logger)
		// jobs keep running after the shutdown signal until Close drains them
		return memory.NewPool(context.WithoutCancel(ctx), processingService, cfg.Worker.Concurrency, cfg.Worker.QueueSize, logger), nil
	default:
		return nil, fmt.Errorf("unknown queue driver %q", cfg.Worker.QueueDriver)
	}
}

func initSweeperTask(ctx context.Context, service port.SweeperService, cfg config.SweeperConfig, logger *slog.Logger) {
	ticker := time.NewTicker(cfg.Every)
	defer ticker.Stop()

	logger.Info("sweeper task initialized", "interval", cfg.Every, "threshold", cfg.StuckThreshold)

	for {
		select {
		case <-ticker.C:
			logger.Debug("sweeper task starting")
			resubmitted, err := service.ResubmitStuck(ctx, time.Now(), cfg.StuckThreshold)
			if err != nil {
				logger.Error("failed to resubmit stuck uploads", "error", err)
			} else if resubmitted > 0 {
				logger.Info("sweeper task resubmitted stuck uploads", "count", resubmitted)
			}
		case <-ctx.Done():
			logger.Info("sweeper task stopped")
			return
		}
	}

}
