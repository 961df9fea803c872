// Package dto provides data transfer objects for the auth HTTP layer.
package dto

// RegisterResponse represents the API response for a created account.
type RegisterResponse struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}

// LoginResponse represents the API response for a successful login.
// TokenType is always "bearer".
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ValidateTokenResponse represents the resolved identity behind a valid token.
// Resource services consume this payload to establish the caller's identity.
type ValidateTokenResponse struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}
