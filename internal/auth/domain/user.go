// Package domain defines the core identity entities owned by the authentication service.
package domain

import (
	"time"

	"taskhub/internal/errors"
)

// User represents an identity record. The password hash never leaves this
// service and is never logged.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
}

// Domain-specific errors for authentication operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrEmailAlreadyRegistered indicates a user with the same email already exists.
	ErrEmailAlreadyRegistered = errors.Wrap(errors.ErrConflict, "email already registered")

	// ErrInvalidCredentials is returned for both unknown email and wrong
	// password so a caller can never learn which factor failed.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid email or password")

	// ErrTokenExpired indicates the token's expiration instant has passed.
	ErrTokenExpired = errors.Wrap(errors.ErrUnauthorized, "token expired")

	// ErrTokenInvalid indicates the token is malformed or its signature does not verify.
	ErrTokenInvalid = errors.Wrap(errors.ErrUnauthorized, "invalid token")

	// ErrUserInactive indicates the identity exists but has been deactivated.
	ErrUserInactive = errors.Wrap(errors.ErrUnauthorized, "user is inactive")
)
