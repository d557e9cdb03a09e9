package repository

import (
	"context"
	"file-processor/internal/core/domain"
	"file-processor/internal/core/port"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUploadRepository struct {
	mock.Mock
}

func NewMockUploadRepository() *MockUploadRepository {
	return &MockUploadRepository{}
}

func (m *MockUploadRepository) Create(ctx context.Context, record domain.UploadRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockUploadRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.UploadRecord, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.UploadRecord), args.Error(1)
}

func (m *MockUploadRepository) FindByIDForOwner(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*domain.UploadRecord, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Get(0).(*domain.UploadRecord), args.Error(1)
}

func (m *MockUploadRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.UploadRecord, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.UploadRecord), args.Error(1)
}

func (m *MockUploadRepository) FindByIDsForOwner(ctx context.Context, ids []uuid.UUID, ownerID uuid.UUID) ([]domain.UploadRecord, error) {
	args := m.Called(ctx, ids, ownerID)
	return args.Get(0).([]domain.UploadRecord), args.Error(1)
}

func (m *MockUploadRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from []domain.UploadStatus, to domain.UploadStatus) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

func (m *MockUploadRepository) FindStale(ctx context.Context, status domain.UploadStatus, before time.Time) ([]domain.UploadRecord, error) {
	args := m.Called(ctx, status, before)
	return args.Get(0).([]domain.UploadRecord), args.Error(1)
}

func (m *MockUploadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockUnitOfWork struct {
	mock.Mock
	uploadRepo *MockUploadRepository
	userRepo   *MockUserRepository
}

func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		uploadRepo: &MockUploadRepository{},
		userRepo:   &MockUserRepository{},
	}
}

func (m *MockUnitOfWork) UploadRepo() port.UploadRepository {
	return m.uploadRepo
}

func (m *MockUnitOfWork) UserRepo() port.UserRepository {
	return m.userRepo
}

func (m *MockUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	args := m.Called(ctx, fn)

	if err := fn(m); err != nil {
		return err
	}

	return args.Error(0)
}

func (m *MockUnitOfWork) GetUploadRepoMock() *MockUploadRepository {
	return m.uploadRepo
}

func (m *MockUnitOfWork) GetUserRepoMock() *MockUserRepository {
	return m.userRepo
}
