// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	taskDomain "taskhub/internal/task/domain"
	taskUseCase "taskhub/internal/task/usecase"
)

// MockTaskUseCase is a mock implementation of UseCase for testing.
type MockTaskUseCase struct {
	mock.Mock
}

// Create mocks the Create method of UseCase.
func (m *MockTaskUseCase) Create(
	ctx context.Context,
	userID int64,
	input taskUseCase.CreateTaskInput,
) (*taskDomain.Task, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*taskDomain.Task), args.Error(1)
}

// List mocks the List method of UseCase.
func (m *MockTaskUseCase) List(
	ctx context.Context,
	userID int64,
	offset, limit int,
) ([]*taskDomain.Task, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*taskDomain.Task), args.Error(1)
}

// Get mocks the Get method of UseCase.
func (m *MockTaskUseCase) Get(
	ctx context.Context,
	userID, taskID int64,
) (*taskDomain.Task, error) {
	args := m.Called(ctx, userID, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*taskDomain.Task), args.Error(1)
}

// Update mocks the Update method of UseCase.
func (m *MockTaskUseCase) Update(
	ctx context.Context,
	userID, taskID int64,
	input taskUseCase.UpdateTaskInput,
) (*taskDomain.Task, error) {
	args := m.Called(ctx, userID, taskID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*taskDomain.Task), args.Error(1)
}

// Delete mocks the Delete method of UseCase.
func (m *MockTaskUseCase) Delete(ctx context.Context, userID, taskID int64) error {
	args := m.Called(ctx, userID, taskID)
	return args.Error(0)
}
