// Package upstream wraps the third-party multi-model AI HTTP service. Every
// proxy handler funnels through the same pattern: call upstream, normalize
// the response shape (JSON or bare text), map failures to gateway errors.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the upstream service root. Overridable via config for
// tests and staging.
const DefaultBaseURL = "https://sii3.moayman.top"

// ErrTimeout reports that the upstream call exceeded its deadline.
var ErrTimeout = errors.New("upstream: request timed out")

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream: status %d", e.Code)
}

// Client calls the upstream AI service.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New returns a Client against baseURL (DefaultBaseURL when empty).
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		// Per-call deadlines come from the request context; the transport
		// timeout is only a backstop.
		HTTP: &http.Client{Timeout: 5 * time.Minute},
	}
}

// Result is a normalized upstream response: either parsed JSON or raw text.
type Result struct {
	fields map[string]any
	text   string
}

// IsJSON reports whether the upstream replied with a JSON object.
func (r Result) IsJSON() bool { return r.fields != nil }

// JSON returns the parsed object, or nil for text responses.
func (r Result) JSON() map[string]any { return r.fields }

// Text returns the trimmed raw body for non-JSON responses.
func (r Result) Text() string { return r.text }

// Field returns the first of keys holding a non-empty string value. For text
// responses it returns the text itself.
func (r Result) Field(keys ...string) string {
	if r.fields == nil {
		return r.text
	}
	for _, key := range keys {
		if v, ok := r.fields[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// URL extracts a link from the common field names upstream uses, falling
// back to the raw text when it looks like a URL.
func (r Result) URL(keys ...string) string {
	if len(keys) == 0 {
		keys = []string{"url", "image", "link", "data"}
	}
	if r.fields != nil {
		for _, key := range keys {
			if v, ok := r.fields[key].(string); ok && v != "" {
				return v
			}
		}
		return ""
	}
	if strings.HasPrefix(r.text, "http") {
		return r.text
	}
	return ""
}

// PostForm posts form data to path with the given deadline.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values, timeout time.Duration) (Result, error) {
	body := strings.NewReader(form.Encode())
	return c.do(ctx, http.MethodPost, path, "application/x-www-form-urlencoded", body, timeout)
}

// PostJSON posts a JSON payload to path with the given deadline.
func (c *Client) PostJSON(ctx context.Context, path string, payload any, timeout time.Duration) (Result, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return Result{}, err
	}
	return c.do(ctx, http.MethodPost, path, "application/json", strings.NewReader(string(buf)), timeout)
}

// Get issues a GET with query parameters and the given deadline.
func (c *Client) Get(ctx context.Context, path string, query url.Values, timeout time.Duration) (Result, error) {
	p := path
	if len(query) > 0 {
		p += "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, p, "", nil, timeout)
}

func (c *Client) do(
	ctx context.Context,
	method, path, contentType string,
	body io.Reader,
	timeout time.Duration,
) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return Result{}, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Result{}, ErrTimeout
		}
		return Result{}, fmt.Errorf("upstream: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("upstream: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, &StatusError{Code: resp.StatusCode, Body: string(raw)}
	}

	return normalize(resp.Header.Get("Content-Type"), raw), nil
}

func normalize(contentType string, raw []byte) Result {
	if strings.HasPrefix(strings.ToLower(contentType), "application/json") {
		var fields map[string]any
		if err := json.Unmarshal(raw, &fields); err == nil {
			return Result{fields: fields}
		}
	}
	return Result{text: strings.TrimSpace(string(raw))}
}
