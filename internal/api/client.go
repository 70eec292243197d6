// Package api implements the HTTP client for the remote POS REST API.
//
// Every request carries the operator's token in the Authorization header
// when one is set, as the raw token with no scheme prefix, which is what the
// server expects. Responses arrive wrapped in a {code|status, data} envelope;
// this client unwraps data and surfaces the server's {message} on failure.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/postill/internal/common"
	"github.com/dmitrijs2005/postill/internal/logging"
)

// Client talks to the POS API at a fixed base URL. It performs no retries
// and no caching; a failed call leaves all client-side state unchanged.
type Client struct {
	baseURL string
	hc      *http.Client
	token   string
	log     logging.Logger
}

// New returns a Client for the given base URL. The timeout bounds every
// request end to end; there is no per-call retry policy.
func New(baseURL string, timeout time.Duration, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		log:     log,
	}
}

// SetToken installs the bearer token attached to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// ClearToken removes the stored token; subsequent requests go out anonymous.
func (c *Client) ClearToken() {
	c.token = ""
}

// envelope is the generic response wrapper of the POS API. Login responses
// use "status", every other endpoint uses "code"; both are tolerated.
type envelope struct {
	Code    int             `json:"code"`
	Status  int             `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// Error is a non-2xx API response that is neither 401 nor 404.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api request failed: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api request failed: %s (status %d)", e.Message, e.StatusCode)
}

// do sends one request and decodes the response envelope into out (when out
// is non-nil). Transport failures map to common.ErrUnavailable so callers
// can distinguish "server down" from "server said no".
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Error(ctx, "api request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := errorMessage(raw)
		c.log.Warn(ctx, "api error response",
			"method", method, "path", path, "status", resp.StatusCode, "message", msg)
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: %s", common.ErrUnauthorized, msg)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", common.ErrNotFound, msg)
		default:
			return &Error{StatusCode: resp.StatusCode, Message: msg}
		}
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if len(env.Data) == 0 {
		// some endpoints answer with the payload directly, no envelope
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode response payload: %w", err)
		}
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

// doJSON marshals payload as a JSON body and performs the request.
func (c *Client) doJSON(ctx context.Context, method, path string, payload any, out any) error {
	var body io.Reader
	contentType := ""
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, body, contentType, out)
}

// errorMessage extracts {message} from an error body, falling back to a
// trimmed copy of the body itself.
func errorMessage(raw []byte) string {
	var e struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &e); err == nil && e.Message != "" {
		return e.Message
	}
	return strings.TrimSpace(string(raw))
}
