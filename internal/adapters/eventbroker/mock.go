package eventbroker

import (
	"context"
	"file-processor/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockTaskQueue struct {
	mock.Mock
}

func NewMockTaskQueue() *MockTaskQueue {
	return &MockTaskQueue{}
}

func (m *MockTaskQueue) Enqueue(ctx context.Context, job domain.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockTaskQueue) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
