// Package api is the HTTP client for the marketplace backend. It wraps the
// REST endpoints the client drives (mentor directory, calendar slots,
// booking creation/verification/cancellation, meeting history) behind typed
// methods, carries session credentials in a cookie jar, and maps transport
// and status failures onto the shared error taxonomy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"mentorlane/internal/config"
	"mentorlane/internal/errors"
	"mentorlane/internal/logging"
)

// Client talks to the marketplace backend. All calls carry the session
// cookie implicitly via the jar. Methods surface *errors.APIError with the
// backend's message intact, so callers can show it verbatim.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	jar       *cookiejar.Jar
	userAgent string
	log       *logging.Logger
}

// envelope is the backend's uniform response shape. Data is left raw so
// each endpoint can decode its own payload type.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// NewClient creates a Client from the API config.
func NewClient(cfg config.APIConfig, log *logging.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	if log == nil {
		log = logging.NopLogger()
	}

	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: cfg.Timeout(),
			Jar:     jar,
		},
		jar:       jar,
		userAgent: cfg.UserAgent,
		log:       log,
	}, nil
}

// SetCookies seeds the jar with persisted session cookies.
func (c *Client) SetCookies(cookies []*http.Cookie) {
	c.jar.SetCookies(c.baseURL, cookies)
}

// Cookies returns the jar's current cookies for the backend, for
// persisting across restarts.
func (c *Client) Cookies() []*http.Cookie {
	return c.jar.Cookies(c.baseURL)
}

// get issues a GET and decodes the envelope's data into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// post issues a POST with a JSON body and decodes the envelope's data into out.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.log.Debug("api request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("api request failed", "method", method, "path", path, "error", err)
		return errors.NewAPIError("request failed", errors.Join(errors.ErrBackendUnavailable, err)).
			WithEndpoint(path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewAPIError("failed to read response", err).WithEndpoint(path)
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			return errors.NewAPIError("malformed response", err).
				WithEndpoint(path).WithStatusCode(resp.StatusCode)
		}
	}

	if resp.StatusCode >= 400 || !env.Success {
		return c.statusError(path, resp.StatusCode, env.Message)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errors.NewAPIError("malformed response data", err).WithEndpoint(path)
		}
	}
	return nil
}

// statusError maps an HTTP failure onto the error taxonomy, keeping the
// backend's message so callers can surface it verbatim.
func (c *Client) statusError(path string, status int, message string) error {
	var cause error
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		cause = errors.ErrNotLoggedIn
	case status == http.StatusConflict:
		cause = errors.ErrSlotConflict
	case status == http.StatusNotFound:
		cause = nil
	case status >= 500:
		cause = errors.ErrBackendUnavailable
	}

	c.log.Warn("api error response", "path", path, "status", status, "message", message)

	if status == http.StatusNotFound {
		return errors.NewNotFoundError("resource", path)
	}

	apiErr := errors.NewAPIError("backend rejected request", cause).
		WithEndpoint(path).
		WithStatusCode(status).
		WithMessage(message)
	// Conflicts and auth failures are not fixed by retrying the same call.
	if status == http.StatusConflict || status == http.StatusUnauthorized || status == http.StatusForbidden {
		apiErr = apiErr.WithRetryable(false)
	}
	return apiErr
}
