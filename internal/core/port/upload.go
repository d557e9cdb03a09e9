package port

import (
	"context"
	"file-processor/internal/core/domain"
	"io"
	"time"

	"github.com/google/uuid"
)

// UploadRepository is an interface to define upload record store interactions
type UploadRepository interface {
	Create(ctx context.Context, record domain.UploadRecord) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.UploadRecord, error)
	FindByIDForOwner(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*domain.UploadRecord, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.UploadRecord, error)
	FindByIDsForOwner(ctx context.Context, ids []uuid.UUID, ownerID uuid.UUID) ([]domain.UploadRecord, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from []domain.UploadStatus, to domain.UploadStatus) error
	FindStale(ctx context.Context, status domain.UploadStatus, before time.Time) ([]domain.UploadRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// FileStorage is an interface to define file storage interactions
type FileStorage interface {
	PutObject(ctx context.Context, fileKey string, reader io.Reader, size int64, contentType string) error
	GetObject(ctx context.Context, fileKey string) (io.ReadCloser, error)
	DeleteObject(ctx context.Context, fileKey string) error
}

// UploadService is an interface to define the upload use cases exposed over http
type UploadService interface {
	CreateUpload(ctx context.Context, ownerID uuid.UUID, filename string, sizeBytes int64, content io.Reader) (*domain.UploadRecord, error)
	GetStatus(ctx context.Context, fileID uuid.UUID, ownerID uuid.UUID) (*domain.UploadRecord, error)
	ListOwnerFiles(ctx context.Context, ownerID uuid.UUID) ([]domain.UploadRecord, error)
}
