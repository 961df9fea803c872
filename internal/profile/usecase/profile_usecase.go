// Package usecase implements the user-profile business logic, including
// just-in-time provisioning on first access.
package usecase

import (
	"context"

	apperrors "taskhub/internal/errors"
	"taskhub/internal/identity"
	profileDomain "taskhub/internal/profile/domain"
)

// UseCase defines the interface for profile business logic operations.
type UseCase interface {
	// GetOrCreate returns the caller's profile, provisioning an empty one on
	// first access. Provisioning is idempotent: when two requests race, the
	// store's uniqueness constraint picks a winner and the loser re-reads
	// the winner's row.
	GetOrCreate(ctx context.Context, ident *identity.Identity) (*profileDomain.Profile, error)
}

// ProfileRepository defines profile persistence operations.
type ProfileRepository interface {
	Create(ctx context.Context, profile *profileDomain.Profile) error
	GetByAuthUserID(ctx context.Context, authUserID int64) (*profileDomain.Profile, error)
}

// ProfileUseCase handles profile-related business logic.
type ProfileUseCase struct {
	profileRepo ProfileRepository
}

// NewProfileUseCase creates a new ProfileUseCase.
func NewProfileUseCase(profileRepo ProfileRepository) UseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
	}
}

// GetOrCreate implements UseCase.
func (uc *ProfileUseCase) GetOrCreate(
	ctx context.Context,
	ident *identity.Identity,
) (*profileDomain.Profile, error) {
	profile, err := uc.profileRepo.GetByAuthUserID(ctx, ident.UserID)
	if err == nil {
		return profile, nil
	}
	if !apperrors.Is(err, profileDomain.ErrProfileNotFound) {
		return nil, err
	}

	fresh := &profileDomain.Profile{AuthUserID: ident.UserID}
	if err := uc.profileRepo.Create(ctx, fresh); err != nil {
		if apperrors.Is(err, profileDomain.ErrProfileAlreadyExists) {
			// Lost the provisioning race; the winner's row is the profile.
			return uc.profileRepo.GetByAuthUserID(ctx, ident.UserID)
		}
		return nil, err
	}

	return fresh, nil
}
