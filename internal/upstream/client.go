// Package upstream is the typed client for the external CareerConnect
// API. Every call goes through the bearer transport; response bodies
// and status codes come back unmodified apart from the error
// classification. Persistence, matching and authorization enforcement
// all live on the other side of this client.
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
	"time"

	"github.com/rs/zerolog"
)

type Client struct {
	base *url.URL
	http *http.Client
	log  zerolog.Logger
}

// Options configures the client; Transport is overridable for tests.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	Tokens    TokenSource
	Transport http.RoundTripper
}

func NewClient(opts Options, log zerolog.Logger) (*Client, error) {
	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse upstream base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("upstream base url %q must be absolute", opts.BaseURL)
	}

	return &Client{
		base: base,
		http: &http.Client{
			Timeout: opts.Timeout,
			Transport: &bearerTransport{
				tokens: opts.Tokens,
				next:   opts.Transport,
			},
		},
		log: log,
	}, nil
}

// do runs one JSON round trip. A non-2xx status or transport failure
// becomes an *Error; the body is decoded into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, query, payload)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return responseError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// stream runs a round trip whose successful body is handed to the
// caller unread (resume download). The caller owns closing it.
func (c *Client) stream(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: err.Error()}
	}
	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		return nil, responseError(resp)
	}
	return resp, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.base.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	return req, nil
}

// responseError preserves the upstream's own message when the body is
// the conventional {"message": "..."} JSON, and the raw body otherwise.
func responseError(resp *http.Response) *Error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	message := strings.TrimSpace(string(data))
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Message != "" {
		message = envelope.Message
	}
	if message == "" {
		message = resp.Status
	}

	return &Error{
		Kind:    classify(resp.StatusCode),
		Status:  resp.StatusCode,
		Message: message,
	}
}
