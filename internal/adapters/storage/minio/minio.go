package minio

import (
	"context"
	"errors"
	"file-processor/internal/config"
	"file-processor/internal/core/domain"
	"fmt"
	"io"
	"log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Adapter is an adapter for minio
type Adapter struct {
	client *minio.Client
	config config.MinioConfig
	logger *slog.Logger
}

// NewAdapter returns Adapter
func NewAdapter(ctx context.Context, cfg config.MinioConfig, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &Adapter{client: client, config: cfg, logger: logger}, nil
}

// PutObject stores size bytes read from reader under fileKey
func (a *Adapter) PutObject(ctx context.Context, fileKey string, reader io.Reader, size int64, contentType string) error {
	info, err := a.client.PutObject(ctx, a.config.BucketName, fileKey, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to put object: %w", err)
	}

	a.logger.Debug("object stored",
		slog.String("fileKey", fileKey),
		slog.Int64("size", info.Size))

	return nil
}

// GetObject retrieves an obj
func (a *Adapter) GetObject(ctx context.Context, fileKey string) (io.ReadCloser, error) {
	object, err := a.client.GetObject(ctx, a.config.BucketName, fileKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}

	// GetObject is lazy, Stat surfaces a missing key before the caller starts reading
	if _, err := object.Stat(); err != nil {
		object.Close()
		if isNoSuchKey(err) {
			return nil, fmt.Errorf("%s: %w", fileKey, domain.ErrObjectNotFound)
		}
		return nil, fmt.Errorf("failed to stat object: %w", err)
	}

	return object, nil
}

// DeleteObject deletes an object from storage
func (a *Adapter) DeleteObject(ctx context.Context, fileKey string) error {
	err := a.client.RemoveObject(ctx, a.config.BucketName, fileKey, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	a.logger.Info("object deleted",
		slog.String("fileKey", fileKey),
		slog.String("bucket", a.config.BucketName))

	return nil
}

func isNoSuchKey(err error) bool {
	var resp minio.ErrorResponse
	if errors.As(err, &resp) {
		return resp.Code == "NoSuchKey"
	}
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}
