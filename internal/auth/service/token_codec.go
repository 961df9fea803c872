package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	authDomain "taskhub/internal/auth/domain"
	apperrors "taskhub/internal/errors"
)

// TokenCodec encodes and decodes signed, time-limited identity tokens.
// Tokens are self-contained bearer credentials: possession is authority and
// nothing is persisted server-side, so revocation before expiry is not
// possible with this design.
type TokenCodec interface {
	// Issue produces a signed token whose subject is the user id and whose
	// expiration is now plus the configured lifetime.
	Issue(userID int64) (string, error)

	// Decode verifies the signature and expiration and returns the subject
	// user id. Fails with ErrTokenExpired or ErrTokenInvalid; both map to an
	// unauthorized outcome at the API boundary.
	Decode(tokenString string) (int64, error)
}

// jwtCodec implements TokenCodec using HMAC-SHA256 signed JWTs.
type jwtCodec struct {
	secret     []byte
	expiration time.Duration
}

// NewTokenCodec creates a TokenCodec with the given symmetric secret and
// token lifetime. The secret is shared only within the authentication
// service's trust boundary; other services validate tokens over HTTP.
func NewTokenCodec(secret string, expiration time.Duration) TokenCodec {
	return &jwtCodec{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// Issue creates a signed JWT with standard claims.
func (c *jwtCodec) Issue(userID int64) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(userID, 10),
		"exp": now.Add(c.expiration).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Decode parses and verifies a JWT, returning the subject user id.
func (c *jwtCodec) Decode(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is acceptable; reject tokens claiming another algorithm.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, authDomain.ErrTokenExpired
		}
		return 0, authDomain.ErrTokenInvalid
	}
	if !token.Valid {
		return 0, authDomain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, authDomain.ErrTokenInvalid
	}

	subject, ok := claims["sub"].(string)
	if !ok {
		return 0, authDomain.ErrTokenInvalid
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, authDomain.ErrTokenInvalid
	}

	return userID, nil
}
