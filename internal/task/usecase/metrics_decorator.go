package usecase

import (
	"context"
	"time"

	"taskhub/internal/metrics"
	taskDomain "taskhub/internal/task/domain"
)

// taskUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type taskUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewTaskUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewTaskUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &taskUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (t *taskUseCaseWithMetrics) record(
	ctx context.Context,
	operation string,
	start time.Time,
	err error,
) {
	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "task", operation, status)
	t.metrics.RecordDuration(ctx, "task", operation, time.Since(start), status)
}

// Create records metrics for task creation operations.
func (t *taskUseCaseWithMetrics) Create(
	ctx context.Context,
	userID int64,
	input CreateTaskInput,
) (*taskDomain.Task, error) {
	start := time.Now()
	task, err := t.next.Create(ctx, userID, input)
	t.record(ctx, "task_create", start, err)
	return task, err
}

// List records metrics for task listing operations.
func (t *taskUseCaseWithMetrics) List(
	ctx context.Context,
	userID int64,
	offset, limit int,
) ([]*taskDomain.Task, error) {
	start := time.Now()
	tasks, err := t.next.List(ctx, userID, offset, limit)
	t.record(ctx, "task_list", start, err)
	return tasks, err
}

// Get records metrics for task retrieval operations.
func (t *taskUseCaseWithMetrics) Get(
	ctx context.Context,
	userID, taskID int64,
) (*taskDomain.Task, error) {
	start := time.Now()
	task, err := t.next.Get(ctx, userID, taskID)
	t.record(ctx, "task_get", start, err)
	return task, err
}

// Update records metrics for task update operations.
func (t *taskUseCaseWithMetrics) Update(
	ctx context.Context,
	userID, taskID int64,
	input UpdateTaskInput,
) (*taskDomain.Task, error) {
	start := time.Now()
	task, err := t.next.Update(ctx, userID, taskID, input)
	t.record(ctx, "task_update", start, err)
	return task, err
}

// Delete records metrics for task deletion operations.
func (t *taskUseCaseWithMetrics) Delete(ctx context.Context, userID, taskID int64) error {
	start := time.Now()
	err := t.next.Delete(ctx, userID, taskID)
	t.record(ctx, "task_delete", start, err)
	return err
}
