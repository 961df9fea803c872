package usecase

import (
	"context"
	"time"

	"taskhub/internal/identity"
	"taskhub/internal/metrics"
	profileDomain "taskhub/internal/profile/domain"
)

// profileUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type profileUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewProfileUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewProfileUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &profileUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// GetOrCreate records metrics for profile retrieval/provisioning operations.
func (p *profileUseCaseWithMetrics) GetOrCreate(
	ctx context.Context,
	ident *identity.Identity,
) (*profileDomain.Profile, error) {
	start := time.Now()
	profile, err := p.next.GetOrCreate(ctx, ident)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "profile", "get_or_create", status)
	p.metrics.RecordDuration(ctx, "profile", "get_or_create", time.Since(start), status)

	return profile, err
}
