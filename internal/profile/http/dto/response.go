// Package dto provides data transfer objects for the profile HTTP layer.
package dto

import "time"

// ProfileResponse represents the API response for the caller's profile.
type ProfileResponse struct {
	ID         int64     `json:"id"`
	AuthUserID int64     `json:"auth_user_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"created_at"`
}
