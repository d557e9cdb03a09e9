package upload

import (
	"file-processor/internal/config"
	"file-processor/internal/core/domain"
	"file-processor/internal/core/port"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

type uploadService struct {
	uow         port.UnitOfWork
	fileStorage port.FileStorage
	queue       port.TaskQueue
	ownerFiles  port.OwnerFileIndexCache
	uploadCfg   config.FileUploadConfig
	logger      *slog.Logger
}

// NewUploadService creates a new upload service
func NewUploadService(
	uow port.UnitOfWork,
	fileStorage port.FileStorage,
	queue port.TaskQueue,
	ownerFiles port.OwnerFileIndexCache,
	cfg config.FileUploadConfig,
	logger *slog.Logger,
) port.UploadService {
	return &uploadService{
		uow:         uow,
		fileStorage: fileStorage,
		queue:       queue,
		ownerFiles:  ownerFiles,
		uploadCfg:   cfg,
		logger:      logger,
	}
}

func (u *uploadService) validateFile(filename string, sizeBytes int64) error {
	ext := strings.ToLower(filepath.Ext(filename))

	allowed := false
	for _, a := range u.uploadCfg.AllowedExtensions {
		if strings.EqualFold(strings.TrimSpace(a), ext) {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrInvalidFileType)
	}

	if sizeBytes > u.uploadCfg.MaxSize {
		return fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrFileSizeTooBig)
	}

	if sizeBytes <= 0 {
		return fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrEmptyFile)
	}

	return nil
}
