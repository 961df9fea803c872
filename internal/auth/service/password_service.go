// Package service provides credential hashing and token encoding for the
// authentication service. These are the only components that ever see plain
// passwords or the token signing secret.
package service

import (
	"github.com/allisson/go-pwdhash"

	apperrors "taskhub/internal/errors"
)

// PasswordService hashes and verifies user passwords.
type PasswordService interface {
	// Hash derives an irreversible verifier from a plain password.
	Hash(plainPassword string) (string, error)

	// Verify performs a constant-time comparison between a plain password and
	// its stored verifier.
	Verify(plainPassword string, hashedPassword string) bool
}

// passwordService implements PasswordService using Argon2id.
type passwordService struct {
	hasher *pwdhash.PasswordHasher
}

// Hash hashes a plain text password using Argon2id with a per-hash salt.
func (s *passwordService) Hash(plainPassword string) (string, error) {
	hashed, err := s.hasher.Hash([]byte(plainPassword))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hashed, nil
}

// Verify compares a plain password against its hash. The underlying library
// re-derives the hash with the stored parameters and compares in constant time.
func (s *passwordService) Verify(plainPassword string, hashedPassword string) bool {
	ok, err := s.hasher.Verify([]byte(plainPassword), hashedPassword)
	if err != nil {
		return false
	}
	return ok
}

// NewPasswordService creates a new PasswordService instance using Argon2id hashing.
// Uses the Interactive policy, tuned for login-path latency.
func NewPasswordService() PasswordService {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyInteractive),
	)
	if err != nil {
		// This should never happen with valid policy
		panic(err)
	}

	return &passwordService{
		hasher: hasher,
	}
}
