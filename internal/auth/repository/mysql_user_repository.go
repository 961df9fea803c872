package repository

import (
	"context"
	"database/sql"
	"errors"

	"taskhub/internal/auth/domain"
	"taskhub/internal/database"

	apperrors "taskhub/internal/errors"
)

// MySQLUserRepository handles identity persistence for MySQL.
type MySQLUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new MySQLUserRepository.
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{
		db: db,
	}
}

// Create inserts a new identity record. MySQL has no RETURNING clause, so the
// row is read back to pick up the store-assigned creation timestamp.
func (r *MySQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (email, password_hash, is_active, created_at)
			  VALUES (?, ?, ?, NOW())`

	result, err := r.db.ExecContext(ctx, query, user.Email, user.PasswordHash, user.IsActive)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrEmailAlreadyRegistered
		}
		return apperrors.Wrap(err, "failed to create user")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get inserted user id")
	}
	user.ID = id

	created, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	user.CreatedAt = created.CreatedAt

	return nil
}

// GetByID retrieves an identity record by id.
func (r *MySQLUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User

	query := `SELECT id, email, password_hash, is_active, created_at
			  FROM users WHERE id = ?`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.IsActive, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by id")
	}

	return &user, nil
}

// GetByEmail retrieves an identity record by email.
func (r *MySQLUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User

	query := `SELECT id, email, password_hash, is_active, created_at
			  FROM users WHERE email = ?`

	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.IsActive, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by email")
	}

	return &user, nil
}
