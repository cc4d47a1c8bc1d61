package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/tutorhive/admin-gateway/pkg/config"
	appErrors "github.com/tutorhive/admin-gateway/pkg/errors"
)

// Client talks to the authoritative tutoring API. It owns no state beyond
// the HTTP client; the caller's bearer token is forwarded verbatim on every
// request.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// New constructs a Client from the upstream configuration.
func New(cfg config.UpstreamConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

// Ping checks upstream reachability for readiness probes. Any answer short
// of a server error counts as reachable; an auth rejection still proves the
// API is up.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrUpstreamUnavailable.Code, appErrors.ErrUpstreamUnavailable.Status, appErrors.ErrUpstreamUnavailable.Message)
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode >= http.StatusInternalServerError {
		return appErrors.Clone(appErrors.ErrUpstream, fmt.Sprintf("upstream health responded with status %d", resp.StatusCode))
	}
	return nil
}

// envelope mirrors the upstream response contract.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Error   *upstreamError  `json:"error"`
	Message string          `json:"message"`
}

type upstreamError struct {
	Message string `json:"message"`
}

func (e envelope) errorMessage() string {
	if e.Error != nil && e.Error.Message != "" {
		return e.Error.Message
	}
	return e.Message
}

// do issues a request and decodes the data portion of the envelope into out.
// Transport failures map to ErrUpstreamUnavailable; error statuses map to
// typed errors carrying the upstream's message when it sent one.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, body interface{}, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "encode upstream payload")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build upstream request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("upstream unreachable",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrUpstreamUnavailable.Code, appErrors.ErrUpstreamUnavailable.Status, appErrors.ErrUpstreamUnavailable.Message)
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "read upstream response")
	}

	var env envelope
	if len(raw) > 0 {
		// Tolerate non-envelope bodies; statusError falls back to a
		// generic message when decoding fails.
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return c.statusError(method, path, resp.StatusCode, env)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "decode upstream response")
		}
	}
	return nil
}

func (c *Client) statusError(method, path string, status int, env envelope) error {
	message := env.errorMessage()
	c.logger.Warn("upstream error",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
		zap.String("upstream_message", message))

	switch {
	case status == http.StatusUnauthorized:
		return appErrors.Clone(appErrors.ErrUnauthorized, message)
	case status == http.StatusForbidden:
		return appErrors.Clone(appErrors.ErrForbidden, message)
	case status == http.StatusNotFound:
		return appErrors.Clone(appErrors.ErrNotFound, message)
	case status == http.StatusConflict:
		return appErrors.Clone(appErrors.ErrConflict, message)
	case status >= http.StatusBadRequest && status < http.StatusInternalServerError:
		return appErrors.Clone(appErrors.ErrValidation, message)
	default:
		if message == "" {
			message = fmt.Sprintf("upstream responded with status %d", status)
		}
		return appErrors.Clone(appErrors.ErrUpstream, message)
	}
}
