package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "taskhub/internal/errors"
	"taskhub/internal/task/domain"
)

func TestMySQLTaskRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLTaskRepository(db)
	now := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO tasks`)).
		WithArgs(int64(42), "write report", "", "pending").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, title, description, status, created_at`)).
		WithArgs(int64(1), int64(42)).
		WillReturnRows(sqlmock.NewRows(taskColumns).
			AddRow(int64(1), int64(42), "write report", "", "pending", now))

	task := &domain.Task{UserID: 42, Title: "write report", Status: domain.StatusPending}
	err = repo.Create(context.Background(), task)
	require.NoError(t, err)
	assert.Equal(t, int64(1), task.ID)
	assert.Equal(t, now, task.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLTaskRepository_Update_NoOpStillSucceeds(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLTaskRepository(db)
	now := time.Now().UTC()

	// MySQL reports zero affected rows when the update changes nothing, so
	// the repository re-reads to confirm the row exists.
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE tasks SET`)).
		WithArgs("write report", "", "pending", int64(1), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, title, description, status, created_at`)).
		WithArgs(int64(1), int64(42)).
		WillReturnRows(sqlmock.NewRows(taskColumns).
			AddRow(int64(1), int64(42), "write report", "", "pending", now))

	task := &domain.Task{ID: 1, UserID: 42, Title: "write report", Status: domain.StatusPending}
	assert.NoError(t, repo.Update(context.Background(), task))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLTaskRepository_Update_MissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLTaskRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE tasks SET`)).
		WithArgs("write report", "", "pending", int64(1), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, title, description, status, created_at`)).
		WithArgs(int64(1), int64(7)).
		WillReturnRows(sqlmock.NewRows(taskColumns))

	task := &domain.Task{ID: 1, UserID: 7, Title: "write report", Status: domain.StatusPending}
	err = repo.Update(context.Background(), task)
	assert.True(t, apperrors.Is(err, domain.ErrTaskNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLTaskRepository_DeleteByIDAndUser_ForeignTask(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLTaskRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM tasks`)).
		WithArgs(int64(1), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.DeleteByIDAndUser(context.Background(), 1, 7)
	assert.True(t, apperrors.Is(err, domain.ErrTaskNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
