// Package gateway implements the API gateway: it authenticates callers
// against the auth service and relays their requests to the owning resource
// service.
package gateway

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "taskhub/internal/errors"
	"taskhub/internal/httputil"
)

// Proxy forwards authenticated requests to a resource service and relays the
// answer verbatim.
type Proxy struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// NewProxy creates a new Proxy. The timeout bounds each downstream round trip.
func NewProxy(timeout time.Duration, logger *slog.Logger) *Proxy {
	return &Proxy{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Forward returns a handler that relays the request to the same path on
// targetBaseURL.
//
// The relay contract:
//   - Method, path, query string, and body travel downstream unchanged.
//   - Only the Authorization and Content-Type request headers are forwarded.
//   - The downstream status code and body come back verbatim; of the
//     downstream headers only Content-Type is propagated. Stripping the rest
//     is the contract, not an oversight.
//   - A transport failure or timeout is the gateway's own 503, distinct from
//     any error the resource service answered with.
func (p *Proxy) Forward(targetBaseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			httputil.HandleBadRequestGin(c, err, p.logger)
			return
		}

		url := targetBaseURL + c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			url += "?" + raw
		}

		req, err := http.NewRequestWithContext(
			c.Request.Context(), c.Request.Method, url, bytes.NewReader(body),
		)
		if err != nil {
			httputil.HandleErrorGin(c, apperrors.Wrap(err, "failed to build downstream request"), p.logger)
			return
		}

		// Re-attach the caller's token so the resource service can run its
		// own validation.
		if auth := c.GetHeader("Authorization"); auth != "" {
			req.Header.Set("Authorization", auth)
		}
		if contentType := c.GetHeader("Content-Type"); contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}

		resp, err := p.httpClient.Do(req)
		if err != nil {
			p.logger.Warn("downstream service unreachable",
				slog.String("target", targetBaseURL),
				slog.String("path", c.Request.URL.Path),
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c,
				apperrors.Wrap(apperrors.ErrServiceUnavailable, "downstream service unreachable"),
				p.logger)
			return
		}
		defer func() { _ = resp.Body.Close() }()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			httputil.HandleErrorGin(c,
				apperrors.Wrap(apperrors.ErrServiceUnavailable, "failed to read downstream response"),
				p.logger)
			return
		}

		c.Data(resp.StatusCode, resp.Header.Get("Content-Type"), respBody)
	}
}
