package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/tasks"+query, nil)
	return c
}

func TestParsePagination(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		offset, limit, err := ParsePagination(paginationContext(t, ""))
		assert.NoError(t, err)
		assert.Equal(t, 0, offset)
		assert.Equal(t, DefaultLimit, limit)
	})

	t.Run("limit at cap", func(t *testing.T) {
		_, limit, err := ParsePagination(paginationContext(t, "?limit=100"))
		assert.NoError(t, err)
		assert.Equal(t, MaxLimit, limit)
	})

	t.Run("explicit values", func(t *testing.T) {
		offset, limit, err := ParsePagination(paginationContext(t, "?offset=20&limit=10"))
		assert.NoError(t, err)
		assert.Equal(t, 20, offset)
		assert.Equal(t, 10, limit)
	})

	t.Run("negative offset", func(t *testing.T) {
		_, _, err := ParsePagination(paginationContext(t, "?offset=-1"))
		assert.Error(t, err)
	})

	t.Run("limit too large", func(t *testing.T) {
		_, _, err := ParsePagination(paginationContext(t, "?limit=101"))
		assert.Error(t, err)
	})

	t.Run("non-numeric", func(t *testing.T) {
		_, _, err := ParsePagination(paginationContext(t, "?offset=abc"))
		assert.Error(t, err)
	})
}
