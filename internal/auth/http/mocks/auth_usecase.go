// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "taskhub/internal/auth/domain"
	authUseCase "taskhub/internal/auth/usecase"
)

// MockAuthUseCase is a mock implementation of UseCase for testing.
type MockAuthUseCase struct {
	mock.Mock
}

// Register mocks the Register method of UseCase.
func (m *MockAuthUseCase) Register(
	ctx context.Context,
	input authUseCase.RegisterInput,
) (*authDomain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.User), args.Error(1)
}

// Login mocks the Login method of UseCase.
func (m *MockAuthUseCase) Login(ctx context.Context, input authUseCase.LoginInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

// ValidateToken mocks the ValidateToken method of UseCase.
func (m *MockAuthUseCase) ValidateToken(
	ctx context.Context,
	tokenString string,
) (*authDomain.User, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.User), args.Error(1)
}
