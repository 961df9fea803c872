package usecase

import (
	"context"
	"time"

	authDomain "taskhub/internal/auth/domain"
	"taskhub/internal/metrics"
)

// authUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type authUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewAuthUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewAuthUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &authUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Register records metrics for account registration operations.
func (a *authUseCaseWithMetrics) Register(
	ctx context.Context,
	input RegisterInput,
) (*authDomain.User, error) {
	start := time.Now()
	user, err := a.next.Register(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "register", status)
	a.metrics.RecordDuration(ctx, "auth", "register", time.Since(start), status)

	return user, err
}

// Login records metrics for credential login operations.
func (a *authUseCaseWithMetrics) Login(ctx context.Context, input LoginInput) (string, error) {
	start := time.Now()
	token, err := a.next.Login(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "login", status)
	a.metrics.RecordDuration(ctx, "auth", "login", time.Since(start), status)

	return token, err
}

// ValidateToken records metrics for token validation operations.
func (a *authUseCaseWithMetrics) ValidateToken(
	ctx context.Context,
	tokenString string,
) (*authDomain.User, error) {
	start := time.Now()
	user, err := a.next.ValidateToken(ctx, tokenString)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "validate_token", status)
	a.metrics.RecordDuration(ctx, "auth", "validate_token", time.Since(start), status)

	return user, err
}
