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

func TestPostgreSQLProfileRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLProfileRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO user_profiles`)).
		WithArgs(int64(42), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), now))

	profile := &domain.Profile{AuthUserID: 42}
	err = repo.Create(context.Background(), profile)
	require.NoError(t, err)
	assert.Equal(t, int64(1), profile.ID)
	assert.Equal(t, now, profile.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLProfileRepository_Create_Duplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLProfileRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO user_profiles`)).
		WithArgs(int64(42), sqlmock.AnyArg()).
		WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "user_profiles_auth_user_id_key"`))

	profile := &domain.Profile{AuthUserID: 42}
	err = repo.Create(context.Background(), profile)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, domain.ErrProfileAlreadyExists))
	assert.True(t, apperrors.Is(err, apperrors.ErrConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLProfileRepository_GetByAuthUserID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLProfileRepository(db)
	now := time.Now().UTC()

	t.Run("Success_WithFullName", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "auth_user_id", "full_name", "created_at"}).
			AddRow(int64(1), int64(42), "Alice Example", now)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, auth_user_id, full_name, created_at`)).
			WithArgs(int64(42)).
			WillReturnRows(rows)

		profile, err := repo.GetByAuthUserID(context.Background(), 42)
		require.NoError(t, err)
		require.NotNil(t, profile.FullName)
		assert.Equal(t, "Alice Example", *profile.FullName)
	})

	t.Run("Success_NullFullName", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "auth_user_id", "full_name", "created_at"}).
			AddRow(int64(1), int64(42), nil, now)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, auth_user_id, full_name, created_at`)).
			WithArgs(int64(42)).
			WillReturnRows(rows)

		profile, err := repo.GetByAuthUserID(context.Background(), 42)
		require.NoError(t, err)
		assert.Nil(t, profile.FullName)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, auth_user_id, full_name, created_at`)).
			WithArgs(int64(999)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "auth_user_id", "full_name", "created_at"}))

		profile, err := repo.GetByAuthUserID(context.Background(), 999)
		require.Error(t, err)
		assert.Nil(t, profile)
		assert.True(t, apperrors.Is(err, domain.ErrProfileNotFound))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
