// Package dto provides data transfer objects for the auth HTTP layer.
package dto

import (
	"taskhub/internal/auth/domain"
	"taskhub/internal/auth/usecase"
)

// ToRegisterInput converts a RegisterRequest DTO to a RegisterInput use case input.
func ToRegisterInput(req RegisterRequest) usecase.RegisterInput {
	return usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	}
}

// ToLoginInput converts a LoginRequest DTO to a LoginInput use case input.
func ToLoginInput(req LoginRequest) usecase.LoginInput {
	return usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}
}

// ToRegisterResponse converts a domain User to a RegisterResponse DTO.
// The password hash never crosses the API boundary.
func ToRegisterResponse(user *domain.User) RegisterResponse {
	return RegisterResponse{
		UserID: user.ID,
		Email:  user.Email,
	}
}

// ToValidateTokenResponse converts a domain User to a ValidateTokenResponse DTO.
func ToValidateTokenResponse(user *domain.User) ValidateTokenResponse {
	return ValidateTokenResponse{
		UserID: user.ID,
		Email:  user.Email,
	}
}
