// Package domain contains the core business entities for user profiles.
package domain

import (
	"time"

	apperrors "taskhub/internal/errors"
)

// Profile is the per-user record owned by the user-profile service. It is
// keyed by the auth service's user id; the two stores share no foreign keys.
type Profile struct {
	ID         int64
	AuthUserID int64
	// FullName is nil until the user sets one. Presentation layers fall
	// back to the caller's email.
	FullName  *string
	CreatedAt time.Time
}

// Profile domain errors wrapping the application error taxonomy.
var (
	ErrProfileNotFound      = apperrors.Wrap(apperrors.ErrNotFound, "profile not found")
	ErrProfileAlreadyExists = apperrors.Wrap(apperrors.ErrConflict, "profile already exists")
)
