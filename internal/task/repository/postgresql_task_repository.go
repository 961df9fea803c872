// Package repository provides data persistence implementations for tasks.
// Every statement beyond the insert carries "AND user_id = ?" so ownership
// is enforced by the store, not by handler checks.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"taskhub/internal/task/domain"

	apperrors "taskhub/internal/errors"
)

// PostgreSQLTaskRepository handles task persistence for PostgreSQL.
type PostgreSQLTaskRepository struct {
	db *sql.DB
}

// NewPostgreSQLTaskRepository creates a new PostgreSQLTaskRepository.
func NewPostgreSQLTaskRepository(db *sql.DB) *PostgreSQLTaskRepository {
	return &PostgreSQLTaskRepository{
		db: db,
	}
}

// Create inserts a new task row.
func (r *PostgreSQLTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	query := `INSERT INTO tasks (user_id, title, description, status, created_at)
			  VALUES ($1, $2, $3, $4, NOW())
			  RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		task.UserID, task.Title, task.Description, string(task.Status),
	).Scan(&task.ID, &task.CreatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create task")
	}
	return nil
}

// GetByIDAndUser retrieves a task by id, scoped to its owner.
func (r *PostgreSQLTaskRepository) GetByIDAndUser(
	ctx context.Context,
	taskID, userID int64,
) (*domain.Task, error) {
	var task domain.Task
	var status string

	query := `SELECT id, user_id, title, description, status, created_at
			  FROM tasks WHERE id = $1 AND user_id = $2`

	err := r.db.QueryRowContext(ctx, query, taskID, userID).Scan(
		&task.ID, &task.UserID, &task.Title, &task.Description, &status, &task.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get task")
	}

	task.Status = domain.Status(status)
	return &task, nil
}

// ListByUser retrieves the user's tasks ordered by id descending.
func (r *PostgreSQLTaskRepository) ListByUser(
	ctx context.Context,
	userID int64,
	offset, limit int,
) ([]*domain.Task, error) {
	query := `SELECT id, user_id, title, description, status, created_at
			  FROM tasks WHERE user_id = $1
			  ORDER BY id DESC
			  LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list tasks")
	}
	defer func() { _ = rows.Close() }()

	var tasks []*domain.Task
	for rows.Next() {
		var task domain.Task
		var status string
		if err := rows.Scan(
			&task.ID, &task.UserID, &task.Title, &task.Description, &status, &task.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan task row")
		}
		task.Status = domain.Status(status)
		tasks = append(tasks, &task)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate task rows")
	}

	return tasks, nil
}

// Update replaces the mutable columns of the user's task.
func (r *PostgreSQLTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	query := `UPDATE tasks SET title = $1, description = $2, status = $3
			  WHERE id = $4 AND user_id = $5`

	result, err := r.db.ExecContext(ctx, query,
		task.Title, task.Description, string(task.Status), task.ID, task.UserID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update task")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// DeleteByIDAndUser removes the user's task.
func (r *PostgreSQLTaskRepository) DeleteByIDAndUser(
	ctx context.Context,
	taskID, userID int64,
) error {
	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, taskID, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete task")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}
