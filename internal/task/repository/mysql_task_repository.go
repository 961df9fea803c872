package repository

import (
	"context"
	"database/sql"
	"errors"

	"taskhub/internal/task/domain"

	apperrors "taskhub/internal/errors"
)

// MySQLTaskRepository handles task persistence for MySQL.
type MySQLTaskRepository struct {
	db *sql.DB
}

// NewMySQLTaskRepository creates a new MySQLTaskRepository.
func NewMySQLTaskRepository(db *sql.DB) *MySQLTaskRepository {
	return &MySQLTaskRepository{
		db: db,
	}
}

// Create inserts a new task row and reads it back for the store-assigned
// creation timestamp.
func (r *MySQLTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	query := `INSERT INTO tasks (user_id, title, description, status, created_at)
			  VALUES (?, ?, ?, ?, NOW())`

	result, err := r.db.ExecContext(ctx, query,
		task.UserID, task.Title, task.Description, string(task.Status),
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create task")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get inserted task id")
	}
	task.ID = id

	created, err := r.GetByIDAndUser(ctx, id, task.UserID)
	if err != nil {
		return err
	}
	task.CreatedAt = created.CreatedAt

	return nil
}

// GetByIDAndUser retrieves a task by id, scoped to its owner.
func (r *MySQLTaskRepository) GetByIDAndUser(
	ctx context.Context,
	taskID, userID int64,
) (*domain.Task, error) {
	var task domain.Task
	var status string

	query := `SELECT id, user_id, title, description, status, created_at
			  FROM tasks WHERE id = ? AND user_id = ?`

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
func (r *MySQLTaskRepository) ListByUser(
	ctx context.Context,
	userID int64,
	offset, limit int,
) ([]*domain.Task, error) {
	query := `SELECT id, user_id, title, description, status, created_at
			  FROM tasks WHERE user_id = ?
			  ORDER BY id DESC
			  LIMIT ? OFFSET ?`

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
func (r *MySQLTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	query := `UPDATE tasks SET title = ?, description = ?, status = ?
			  WHERE id = ? AND user_id = ?`

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
		// MySQL reports zero affected rows for a no-op update as well as a
		// missing row, so distinguish the two with a read.
		if _, err := r.GetByIDAndUser(ctx, task.ID, task.UserID); err != nil {
			return err
		}
	}
	return nil
}

// DeleteByIDAndUser removes the user's task.
func (r *MySQLTaskRepository) DeleteByIDAndUser(
	ctx context.Context,
	taskID, userID int64,
) error {
	query := `DELETE FROM tasks WHERE id = ? AND user_id = ?`

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
