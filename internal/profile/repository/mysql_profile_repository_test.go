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

	apperrors "taskhub/internal/errors"
	"taskhub/internal/profile/domain"
)

func TestMySQLProfileRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLProfileRepository(db)
	now := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO user_profiles`)).
		WithArgs(int64(42), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, auth_user_id, full_name, created_at`)).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "auth_user_id", "full_name", "created_at"}).
			AddRow(int64(1), int64(42), nil, now))

	profile := &domain.Profile{AuthUserID: 42}
	err = repo.Create(context.Background(), profile)
	require.NoError(t, err)
	assert.Equal(t, int64(1), profile.ID)
	assert.Equal(t, now, profile.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLProfileRepository_Create_Duplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLProfileRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO user_profiles`)).
		WithArgs(int64(42), sqlmock.AnyArg()).
		WillReturnError(errors.New(`Error 1062 (23000): Duplicate entry '42' for key 'user_profiles.auth_user_id'`))

	profile := &domain.Profile{AuthUserID: 42}
	err = repo.Create(context.Background(), profile)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLProfileRepository_GetByAuthUserID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLProfileRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, auth_user_id, full_name, created_at`)).
		WithArgs(int64(999)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "auth_user_id", "full_name", "created_at"}))

	profile, err := repo.GetByAuthUserID(context.Background(), 999)
	require.Error(t, err)
	assert.Nil(t, profile)
	assert.True(t, apperrors.Is(err, domain.ErrProfileNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
