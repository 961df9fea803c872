package httputil

import (
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "taskhub/internal/errors"
)

// BearerToken extracts the bearer token from the Authorization header of the
// request bound to c. The "bearer" scheme is matched case-insensitively.
//
// A missing header, a non-bearer scheme, and an empty token all return
// ErrUnauthorized: callers must not be able to distinguish the failure modes.
func BearerToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", apperrors.Wrap(apperrors.ErrUnauthorized, "missing authorization header")
	}

	const bearerPrefix = "bearer "
	if len(authHeader) < len(bearerPrefix) ||
		!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return "", apperrors.Wrap(apperrors.ErrUnauthorized, "malformed authorization header")
	}

	token := authHeader[len(bearerPrefix):]
	if token == "" {
		return "", apperrors.Wrap(apperrors.ErrUnauthorized, "empty bearer token")
	}

	return token, nil
}
