package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apperrors "taskhub/internal/errors"
)

func contextWithAuthHeader(value string) *gin.Context {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if value != "" {
		c.Request.Header.Set("Authorization", value)
	}
	return c
}

func TestBearerToken(t *testing.T) {
	t.Run("Success_StandardCasing", func(t *testing.T) {
		token, err := BearerToken(contextWithAuthHeader("Bearer abc123"))
		assert.NoError(t, err)
		assert.Equal(t, "abc123", token)
	})

	t.Run("Success_CaseInsensitiveScheme", func(t *testing.T) {
		token, err := BearerToken(contextWithAuthHeader("bEaReR abc123"))
		assert.NoError(t, err)
		assert.Equal(t, "abc123", token)
	})

	t.Run("Error_MissingHeader", func(t *testing.T) {
		_, err := BearerToken(contextWithAuthHeader(""))
		assert.True(t, apperrors.Is(err, apperrors.ErrUnauthorized))
	})

	t.Run("Error_WrongScheme", func(t *testing.T) {
		_, err := BearerToken(contextWithAuthHeader("Basic abc123"))
		assert.True(t, apperrors.Is(err, apperrors.ErrUnauthorized))
	})

	t.Run("Error_EmptyToken", func(t *testing.T) {
		_, err := BearerToken(contextWithAuthHeader("Bearer "))
		assert.True(t, apperrors.Is(err, apperrors.ErrUnauthorized))
	})
}
