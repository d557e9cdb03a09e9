package storage

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func NewMockStorage() *MockStorage {
	return &MockStorage{}
}

func (m *MockStorage) PutObject(ctx context.Context, fileKey string, reader io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, fileKey, reader, size, contentType)
	return args.Error(0)
}

func (m *MockStorage) GetObject(ctx context.Context, fileKey string) (io.ReadCloser, error) {
	args := m.Called(ctx, fileKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockStorage) DeleteObject(ctx context.Context, fileKey string) error {
	args := m.Called(ctx, fileKey)
	return args.Error(0)
}
