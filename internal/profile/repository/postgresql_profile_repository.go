// Package repository provides data persistence implementations for user profiles.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"taskhub/internal/database"
	"taskhub/internal/profile/domain"

	apperrors "taskhub/internal/errors"
)

// PostgreSQLProfileRepository handles profile persistence for PostgreSQL.
type PostgreSQLProfileRepository struct {
	db *sql.DB
}

// NewPostgreSQLProfileRepository creates a new PostgreSQLProfileRepository.
func NewPostgreSQLProfileRepository(db *sql.DB) *PostgreSQLProfileRepository {
	return &PostgreSQLProfileRepository{
		db: db,
	}
}

// Create inserts a new profile row. The unique index on auth_user_id turns a
// provisioning race into ErrProfileAlreadyExists for the loser.
func (r *PostgreSQLProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `INSERT INTO user_profiles (auth_user_id, full_name, created_at)
			  VALUES ($1, $2, NOW())
			  RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, profile.AuthUserID, toNullString(profile.FullName)).
		Scan(&profile.ID, &profile.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrProfileAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create profile")
	}
	return nil
}

// GetByAuthUserID retrieves a profile by the owning auth user id.
func (r *PostgreSQLProfileRepository) GetByAuthUserID(
	ctx context.Context,
	authUserID int64,
) (*domain.Profile, error) {
	var profile domain.Profile
	var fullName sql.NullString

	query := `SELECT id, auth_user_id, full_name, created_at
			  FROM user_profiles WHERE auth_user_id = $1`

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

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
