package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/internal/auth/domain"
	apperrors "taskhub/internal/errors"
)

func TestMySQLUserRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLUserRepository(db)
	now := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs("a@x.com", "hashed", true).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, password_hash, is_active, created_at`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "is_active", "created_at"}).
			AddRow(int64(1), "a@x.com", "hashed", true, now))

	user := &domain.User{Email: "a@x.com", PasswordHash: "hashed", IsActive: true}
	err = repo.Create(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, now, user.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLUserRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs("a@x.com", "hashed", true).
		WillReturnError(errors.New(`Error 1062 (23000): Duplicate entry 'a@x.com' for key 'users.email'`))

	user := &domain.User{Email: "a@x.com", PasswordHash: "hashed", IsActive: true}
	err = repo.Create(context.Background(), user)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLUserRepository_GetByEmail_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, password_hash, is_active, created_at`)).
		WithArgs("missing@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "is_active", "created_at"}))

	user, err := repo.GetByEmail(context.Background(), "missing@x.com")
	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, apperrors.Is(err, domain.ErrUserNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
