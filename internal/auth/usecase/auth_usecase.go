// Package usecase implements the authentication business logic: registration,
// login, and token validation.
package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	authDomain "taskhub/internal/auth/domain"
	authService "taskhub/internal/auth/service"
	apperrors "taskhub/internal/errors"
	appValidation "taskhub/internal/validation"
)

// RegisterInput contains the input data for user registration.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput contains the input data for login.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UseCase defines the interface for authentication business logic operations.
type UseCase interface {
	// Register creates a new identity record. Duplicate emails are rejected
	// by the store's uniqueness constraint, not a check-then-act lookup.
	Register(ctx context.Context, input RegisterInput) (*authDomain.User, error)

	// Login verifies credentials and returns a signed access token.
	Login(ctx context.Context, input LoginInput) (string, error)

	// ValidateToken decodes a token and resolves its subject to an existing,
	// active identity. It is idempotent and side-effect-free: every service
	// in the constellation calls it once per inbound request.
	ValidateToken(ctx context.Context, tokenString string) (*authDomain.User, error)
}

// UserRepository defines identity record persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *authDomain.User) error
	GetByID(ctx context.Context, id int64) (*authDomain.User, error)
	GetByEmail(ctx context.Context, email string) (*authDomain.User, error)
}

// AuthUseCase handles authentication-related business logic.
type AuthUseCase struct {
	userRepo        UserRepository
	passwordService authService.PasswordService
	tokenCodec      authService.TokenCodec
}

// NewAuthUseCase creates a new AuthUseCase.
func NewAuthUseCase(
	userRepo UserRepository,
	passwordService authService.PasswordService,
	tokenCodec authService.TokenCodec,
) UseCase {
	return &AuthUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenCodec:      tokenCodec,
	}
}

// validateRegisterInput validates the registration input.
func (uc *AuthUseCase) validateRegisterInput(input RegisterInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
			appValidation.PasswordStrength{
				MinLength:     8,
				RequireUpper:  true,
				RequireLower:  true,
				RequireNumber: true,
			},
		),
	)
	return appValidation.WrapValidationError(err)
}

// Register creates a new identity record with a hashed password verifier.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*authDomain.User, error) {
	if err := uc.validateRegisterInput(input); err != nil {
		return nil, err
	}

	hashedPassword, err := uc.passwordService.Hash(input.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash password")
	}

	user := &authDomain.User{
		Email:        strings.TrimSpace(strings.ToLower(input.Email)),
		PasswordHash: hashedPassword,
		IsActive:     true,
	}

	// The repository relies on the unique index on email: two concurrent
	// registrations for the same address race at the store, and exactly one
	// wins while the other surfaces ErrEmailAlreadyRegistered.
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues a token for the identity.
func (uc *AuthUseCase) Login(ctx context.Context, input LoginInput) (string, error) {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Email, validation.Required.Error("email is required")),
		validation.Field(&input.Password, validation.Required.Error("password is required")),
	)
	if err != nil {
		return "", appValidation.WrapValidationError(err)
	}

	user, err := uc.userRepo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(input.Email)))
	if err != nil {
		if apperrors.Is(err, authDomain.ErrUserNotFound) {
			// Identical error for unknown email and wrong password.
			return "", authDomain.ErrInvalidCredentials
		}
		return "", err
	}

	if !uc.passwordService.Verify(input.Password, user.PasswordHash) {
		return "", authDomain.ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", authDomain.ErrUserInactive
	}

	token, err := uc.tokenCodec.Issue(user.ID)
	if err != nil {
		return "", err
	}

	return token, nil
}

// ValidateToken decodes a token and resolves the subject to an identity record.
func (uc *AuthUseCase) ValidateToken(ctx context.Context, tokenString string) (*authDomain.User, error) {
	userID, err := uc.tokenCodec.Decode(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, authDomain.ErrUserNotFound) {
			// Structurally valid token whose subject no longer resolves.
			return nil, authDomain.ErrTokenInvalid
		}
		// Every other service depends on this endpoint; a store failure here
		// must surface as unavailable, never as unauthorized.
		return nil, apperrors.Wrap(apperrors.ErrServiceUnavailable, "identity store lookup failed")
	}

	if !user.IsActive {
		return nil, authDomain.ErrUserInactive
	}

	return user, nil
}
