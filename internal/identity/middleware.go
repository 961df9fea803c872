package identity

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"taskhub/internal/httputil"
)

// AuthRequired authenticates every request via the validate-token endpoint.
//
// The middleware:
//  1. Extracts the bearer token from the Authorization header (case-insensitive)
//  2. Validates the token against the authentication service
//  3. Stores the resolved identity in the request context
//  4. Allows downstream handlers to access it via FromContext()
//
// Error handling:
//   - Missing/malformed Authorization header → 401 Unauthorized
//   - Token rejected by the auth service → 401 Unauthorized
//   - Auth service unreachable or timing out → 503 Service Unavailable
func AuthRequired(client Client, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := httputil.BearerToken(c)
		if err != nil {
			logger.Debug("authentication failed: no usable bearer token")
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ident, err := client.Validate(c.Request.Context(), token)
		if err != nil {
			logger.Debug("authentication failed",
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithIdentity(c.Request.Context(), ident)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.Int64("user_id", ident.UserID))

		c.Next()
	}
}
