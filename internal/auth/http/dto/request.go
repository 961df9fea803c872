// Package dto provides data transfer objects for the auth HTTP layer.
package dto

// RegisterRequest represents the API request for account registration.
// Field-level validation lives in the use case input, so the DTO carries
// the raw payload only.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the API request for credential login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
