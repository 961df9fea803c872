// Package dto provides data transfer objects for the profile HTTP layer.
package dto

import (
	"taskhub/internal/identity"
	"taskhub/internal/profile/domain"
)

// ToProfileResponse converts a domain Profile to a ProfileResponse DTO.
// An unset full name falls back to the caller's email so clients always
// have something to display.
func ToProfileResponse(profile *domain.Profile, ident *identity.Identity) ProfileResponse {
	fullName := ident.Email
	if profile.FullName != nil && *profile.FullName != "" {
		fullName = *profile.FullName
	}

	return ProfileResponse{
		ID:         profile.ID,
		AuthUserID: profile.AuthUserID,
		FullName:   fullName,
		Email:      ident.Email,
		CreatedAt:  profile.CreatedAt,
	}
}
