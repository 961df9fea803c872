package repository

import (
	"context"
	"database/sql"
	"errors"

	"taskhub/internal/database"
	"taskhub/internal/profile/domain"

	apperrors "taskhub/internal/errors"
)

// MySQLProfileRepository handles profile persistence for MySQL.
type MySQLProfileRepository struct {
	db *sql.DB
}

// NewMySQLProfileRepository creates a new MySQLProfileRepository.
func NewMySQLProfileRepository(db *sql.DB) *MySQLProfileRepository {
	return &MySQLProfileRepository{
		db: db,
	}
}

// Create inserts a new profile row and reads it back for the store-assigned
// creation timestamp.
func (r *MySQLProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `INSERT INTO user_profiles (auth_user_id, full_name, created_at)
			  VALUES (?, ?, NOW())`

	result, err := r.db.ExecContext(ctx, query, profile.AuthUserID, toNullString(profile.FullName))
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrProfileAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create profile")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get inserted profile id")
	}
	profile.ID = id

	created, err := r.GetByAuthUserID(ctx, profile.AuthUserID)
	if err != nil {
		return err
	}
	profile.CreatedAt = created.CreatedAt

	return nil
}

// GetByAuthUserID retrieves a profile by the owning auth user id.
func (r *MySQLProfileRepository) GetByAuthUserID(
	ctx context.Context,
	authUserID int64,
) (*domain.Profile, error) {
	var profile domain.Profile
	var fullName sql.NullString

	query := `SELECT id, auth_user_id, full_name, created_at
			  FROM user_profiles WHERE auth_user_id = ?`

	err := r.db.QueryRowContext(ctx, query, authUserID).Scan(
		&profile.ID, &profile.AuthUserID, &fullName, &profile.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get profile by auth user id")
	}

	profile.FullName = fromNullString(fullName)
	return &profile, nil
}
