package upload

import (
	"context"
	"file-processor/internal/core/domain"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUploadService is a mock implementation of UploadService
type MockUploadService struct {
	mock.Mock
}

// NewMockUploadService creates a new MockUploadService
func NewMockUploadService() *MockUploadService {
	return &MockUploadService{}
}

func (m *MockUploadService) CreateUpload(ctx context.Context, ownerID uuid.UUID, filename string, sizeBytes int64, content io.Reader) (*domain.UploadRecord, error) {
	args := m.Called(ctx, ownerID, filename, sizeBytes, content)
	return args.Get(0).(*domain.UploadRecord), args.Error(1)
}

func (m *MockUploadService) GetStatus(ctx context.Context, fileID uuid.UUID, ownerID uuid.UUID) (*domain.UploadRecord, error) {
	args := m.Called(ctx, fileID, ownerID)
	return args.Get(0).(*domain.UploadRecord), args.Error(1)
}

func (m *MockUploadService) ListOwnerFiles(ctx context.Context, ownerID uuid.UUID) ([]domain.UploadRecord, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.UploadRecord), args.Error(1)
}
