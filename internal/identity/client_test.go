package identity

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	apperrors "taskhub/internal/errors"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// The net/http transport keeps idle connections in a background
		// goroutine pool that outlives individual tests.
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHTTPClient_Validate(t *testing.T) {
	t.Run("Success_ValidToken", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/auth/validate-token", r.URL.Path)
			assert.Equal(t, "Bearer valid-token", r.Header.Get("Authorization"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"user_id": 42, "email": "alice@example.com"}`))
		}))
		defer server.Close()

		client := NewHTTPClient(server.URL, 5*time.Second, testLogger())

		ident, err := client.Validate(context.Background(), "valid-token")
		require.NoError(t, err)
		assert.Equal(t, int64(42), ident.UserID)
		assert.Equal(t, "alice@example.com", ident.Email)
	})

	t.Run("Error_TokenRejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error": "unauthorized"}`))
		}))
		defer server.Close()

		client := NewHTTPClient(server.URL, 5*time.Second, testLogger())

		ident, err := client.Validate(context.Background(), "bad-token")
		assert.Nil(t, ident)
		assert.True(t, apperrors.Is(err, apperrors.ErrUnauthorized))
		assert.False(t, apperrors.Is(err, apperrors.ErrServiceUnavailable))
	})

	t.Run("Error_UpstreamInternalError_StillUnauthorized", func(t *testing.T) {
		// Any non-200 answer from the auth service means the token was not
		// affirmed, even when the auth service itself is broken.
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewHTTPClient(server.URL, 5*time.Second, testLogger())

		ident, err := client.Validate(context.Background(), "valid-token")
		assert.Nil(t, ident)
		assert.True(t, apperrors.Is(err, apperrors.ErrUnauthorized))
	})

	t.Run("Error_ServiceUnreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // connection refused from here on

		client := NewHTTPClient(server.URL, 5*time.Second, testLogger())

		ident, err := client.Validate(context.Background(), "valid-token")
		assert.Nil(t, ident)
		assert.True(t, apperrors.Is(err, apperrors.ErrServiceUnavailable))
		assert.False(t, apperrors.Is(err, apperrors.ErrUnauthorized))
	})

	t.Run("Error_Timeout", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer server.Close()
		defer close(release)

		client := NewHTTPClient(server.URL, 50*time.Millisecond, testLogger())

		ident, err := client.Validate(context.Background(), "valid-token")
		assert.Nil(t, ident)
		assert.True(t, apperrors.Is(err, apperrors.ErrServiceUnavailable))
	})

	t.Run("Error_MalformedResponseBody", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer server.Close()

		client := NewHTTPClient(server.URL, 5*time.Second, testLogger())

		ident, err := client.Validate(context.Background(), "valid-token")
		assert.Nil(t, ident)
		assert.Error(t, err)
	})
}
