// Package base provides the default HTTP transport for the Ghost Content API client.
package base

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	apierrors "github.com/howToCodeWell/ghost-content-api/internal/errors"
	"github.com/howToCodeWell/ghost-content-api/metrics"
)

const (
	// DefaultTimeout for API requests
	DefaultTimeout = 30 * time.Second

	// redacted replaces the content API key wherever a URL is logged or returned
	redacted = "REDACTED"
)

// Request describes a single outbound Content API request.
type Request struct {
	Method   string
	URL      string // absolute URL without query string
	Header   http.Header
	Query    url.Values
	JSONBody any // encoded as the request body when non-nil
}

// Response is the raw result of a request.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport performs requests with a net/http client.
type Transport struct {
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Option configures the Transport
type Option func(*Transport)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(t *Transport) {
		if c != nil {
			t.HTTPClient = c
		}
	}
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) Option {
	return func(t *Transport) {
		if l != nil {
			t.Logger = l
		}
	}
}

// WithTimeout sets the timeout of the default HTTP client
func WithTimeout(d time.Duration) Option {
	return func(t *Transport) {
		if d > 0 {
			t.HTTPClient = newHTTPClient(d)
		}
	}
}

// NewTransport creates a transport with default settings
func NewTransport(opts ...Option) *Transport {
	t := &Transport{
		HTTPClient: newHTTPClient(DefaultTimeout),
		Logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Do performs the request and returns the full response body.
// Responses with status >= 400 yield an *apierrors.StatusError.
func (t *Transport) Do(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, errors.New("request is nil")
	}
	if req.Method == "" {
		return nil, errors.New("HTTP method is required")
	}

	target, err := url.Parse(req.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid request URL: %w", err)
	}
	if len(req.Query) > 0 {
		target.RawQuery = req.Query.Encode()
	}

	var body io.Reader
	if req.JSONBody != nil {
		data, err := json.Marshal(req.JSONBody)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", redactError(err))
	}
	for k, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(k, v)
		}
	}
	if body != nil && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := t.HTTPClient.Do(httpReq)
	duration := time.Since(start)
	if err != nil {
		metrics.RecordHTTPRequest(req.Method, 0, duration.Seconds())
		t.Logger.Warn("Content API request failed",
			"method", req.Method,
			"url", RedactURL(target.String()),
			"error", redactError(err))
		return nil, fmt.Errorf("request failed: %w", redactError(err))
	}

	respBody, err := readAndClose(resp)
	metrics.RecordHTTPRequest(req.Method, resp.StatusCode, duration.Seconds())
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	t.Logger.Debug("Content API request",
		"method", req.Method,
		"url", RedactURL(target.String()),
		"status", resp.StatusCode,
		"bytes", len(respBody),
		"duration", duration)

	if resp.StatusCode >= 400 {
		return nil, apierrors.NewStatusError(resp.StatusCode, respBody)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		Body:       respBody,
	}, nil
}

// RedactURL replaces the value of the key query parameter.
// Unparseable input is returned as a placeholder rather than echoed.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid url>"
	}
	q := u.Query()
	if !q.Has("key") {
		return raw
	}
	q.Set("key", redacted)
	u.RawQuery = q.Encode()
	return u.String()
}

// redactError scrubs the URL carried by a *url.Error.
func redactError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = RedactURL(urlErr.URL)
	}
	return err
}

// readAndClose reads the response body and closes it
func readAndClose(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return body, err
}

// newHTTPClient creates an HTTP client with optimized transport settings
func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		MaxConnsPerHost:       50,
		IdleConnTimeout:       120 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		DisableCompression:    false,
		ForceAttemptHTTP2:     true,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
