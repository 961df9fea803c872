package identity

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	apperrors "taskhub/internal/errors"
)

// validateTokenPath is the authentication service endpoint that resolves a
// bearer token to the identity behind it.
const validateTokenPath = "/auth/validate-token"

// Client validates bearer tokens against the authentication service.
type Client interface {
	// Validate resolves a bearer token to the identity behind it.
	//
	// The error split is deliberate and load-bearing: a transport failure
	// (connection refused, timeout) wraps ErrServiceUnavailable, while any
	// response other than 200 wraps ErrUnauthorized. Callers surface the
	// first as 503 and the second as 401, so a broken auth service is never
	// reported as a bad credential.
	Validate(ctx context.Context, token string) (*Identity, error)
}

// HTTPClient is the HTTP implementation of Client.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates a new HTTPClient targeting the authentication service
// at baseURL. The timeout bounds the whole validation round trip.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *slog.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Validate implements Client.
func (c *HTTPClient) Validate(ctx context.Context, token string) (*Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+validateTokenPath, nil)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to build validate-token request")
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The auth service could not be reached at all. This must stay
		// distinguishable from a rejected token.
		c.logger.Warn("token validation transport failure",
			slog.String("auth_service_url", c.baseURL),
			slog.String("error", err.Error()))
		return nil, apperrors.Wrap(apperrors.ErrServiceUnavailable, "authentication service unreachable")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		c.logger.Debug("token validation rejected",
			slog.Int("status_code", resp.StatusCode))
		return nil, apperrors.Wrap(apperrors.ErrUnauthorized, "token validation rejected")
	}

	var ident Identity
	if err := json.NewDecoder(resp.Body).Decode(&ident); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode validate-token response")
	}

	return &ident, nil
}
