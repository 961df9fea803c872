// Package domain contains the core business entities for tasks.
package domain

import (
	"time"

	apperrors "taskhub/internal/errors"
)

// Status is the lifecycle state of a task.
type Status string

// Task statuses. New tasks default to StatusPending.
const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// StatusValues returns every valid status as a string slice, for validation rules.
func StatusValues() []string {
	return []string{
		string(StatusPending),
		string(StatusInProgress),
		string(StatusCompleted),
	}
}

// Task is a unit of work owned by exactly one user. UserID is the asserted
// identity from token validation; the task store holds no foreign key into
// the auth store.
type Task struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Status      Status
	CreatedAt   time.Time
}

// ErrTaskNotFound covers both a missing task and a task owned by someone
// else. Collapsing the two keeps task ids unenumerable across owners.
var ErrTaskNotFound = apperrors.Wrap(apperrors.ErrNotFound, "task not found")
