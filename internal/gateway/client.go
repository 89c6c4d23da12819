// Package gateway wraps the remote commerce API behind one typed client.
// Every endpoint the storefront talks to lives here; callers never see raw
// HTTP.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"storefront/internal/model"
)

// Client is an HTTP client for the commerce API. A circuit breaker guards the
// shared upstream so a flapping backend fails fast instead of hanging every
// screen on the full timeout.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*http.Response]
	logger     zerolog.Logger
}

// New creates a new API client for the given base URL.
func New(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	breaker := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        "commerce-api",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		breaker: breaker,
		logger:  logger.With().Str("component", "gateway").Logger(),
	}
}

// errorBody is the optional JSON body of a non-2xx response.
type errorBody struct {
	Message string `json:"message"`
}

// do issues a request and decodes a 2xx JSON response into out (when out is
// non-nil and the body is non-empty). Transport and breaker failures map to
// NETWORK_FAILURE; non-2xx statuses map to NOT_FOUND, UNAUTHENTICATED or
// SERVER_REJECTED carrying the server message when one is present.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	correlationID := uuid.NewString()
	req.Header.Set("X-Correlation-Id", correlationID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("method", method).
			Str("path", path).
			Str("correlation_id", correlationID).
			Msg("request failed")
		return model.NewDomainError(model.ErrCodeNetworkFailure, "Could not reach the store")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.NewDomainError(model.ErrCodeNetworkFailure, "Could not read the store response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn().
			Int("status", resp.StatusCode).
			Str("method", method).
			Str("path", path).
			Str("correlation_id", correlationID).
			Msg("request rejected")
		return statusError(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// statusError maps a non-2xx response to a domain error, preferring the
// server-provided message over the generic fallback.
func statusError(status int, body []byte) error {
	message := ""
	var eb errorBody
	if len(body) > 0 && json.Unmarshal(body, &eb) == nil {
		message = eb.Message
	}

	switch {
	case status == http.StatusNotFound:
		if message == "" {
			message = "Not found"
		}
		return model.NewDomainError(model.ErrCodeNotFound, message)
	case status == http.StatusUnauthorized:
		if message == "" {
			message = "Please sign in to continue"
		}
		return model.NewDomainError(model.ErrCodeUnauthenticated, message)
	default:
		if message == "" {
			message = "The store rejected the request"
		}
		return model.NewDomainError(model.ErrCodeServerRejected, message)
	}
}
