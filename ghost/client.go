package ghost

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/howToCodeWell/ghost-content-api/internal/base"
	"github.com/howToCodeWell/ghost-content-api/metrics"
	"github.com/howToCodeWell/ghost-content-api/tracing"
)

// Query holds query string parameters for a request.
// Entries with empty values are not sent.
type Query map[string]string

// Client provides access to the Ghost Content API of a single site
type Client struct {
	baseURL   string
	userAgent string
	logger    *slog.Logger

	mu        sync.RWMutex
	token     string
	transport Transport
}

// Option configures the Client
type Option func(*clientOptions)

type clientOptions struct {
	token      string
	apiVersion string
	userAgent  string
	transport  Transport
	logger     *slog.Logger
}

// WithAPIToken sets the content API key
func WithAPIToken(token string) Option {
	return func(o *clientOptions) {
		o.token = token
	}
}

// WithAPIVersion sets the API version path segment (default v2)
func WithAPIVersion(version string) Option {
	return func(o *clientOptions) {
		if version != "" {
			o.apiVersion = version
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request
func WithUserAgent(ua string) Option {
	return func(o *clientOptions) {
		if ua != "" {
			o.userAgent = ua
		}
	}
}

// WithTransport sets the transport used to perform requests
func WithTransport(t Transport) Option {
	return func(o *clientOptions) {
		if t != nil {
			o.transport = t
		}
	}
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) Option {
	return func(o *clientOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// New creates a client for the site at host.
// The base URL is fixed here and never changes afterwards.
func New(host string, opts ...Option) *Client {
	o := clientOptions{
		apiVersion: DefaultAPIVersion,
		userAgent:  DefaultUserAgent,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.transport == nil {
		o.transport = base.NewTransport(base.WithLogger(o.logger))
	}

	return &Client{
		baseURL:   strings.TrimRight(host, "/") + "/ghost/api/" + o.apiVersion + "/content/",
		userAgent: o.userAgent,
		logger:    o.logger,
		token:     o.token,
		transport: o.transport,
	}
}

// NewFromConfig creates a client with the default transport configured from cfg
func NewFromConfig(cfg *Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	transport := base.NewTransport(
		base.WithTimeout(cfg.Timeout),
		base.WithLogger(logger),
	)
	return New(cfg.Host,
		WithAPIToken(cfg.APIToken),
		WithAPIVersion(cfg.APIVersion),
		WithUserAgent(cfg.UserAgent),
		WithTransport(transport),
		WithLogger(logger),
	)
}

// BaseURL returns the resolved Content API root, ending in a slash
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Connect sets the API token and returns the client for chaining
func (c *Client) Connect(token string) *Client {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	return c
}

// APIToken returns the current token and whether one is set
func (c *Client) APIToken() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token, c.token != ""
}

// SetTransport replaces the transport. A nil transport is ignored.
func (c *Client) SetTransport(t Transport) *Client {
	if t == nil {
		return c
	}
	c.mu.Lock()
	c.transport = t
	c.mu.Unlock()
	return c
}

// Transport returns the transport currently in use
func (c *Client) Transport() Transport {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.transport
}

func (c *Client) snapshot() (string, Transport) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token, c.transport
}

// Get performs a GET request against resource
func (c *Client) Get(ctx context.Context, resource string, query Query) (any, error) {
	return c.Call(ctx, http.MethodGet, resource, query, nil)
}

// Post sends body as JSON to resource
func (c *Client) Post(ctx context.Context, resource string, body map[string]any) (any, error) {
	return c.Call(ctx, http.MethodPost, resource, nil, body)
}

// Put sends body as JSON to resource
func (c *Client) Put(ctx context.Context, resource string, body map[string]any) (any, error) {
	return c.Call(ctx, http.MethodPut, resource, nil, body)
}

// Delete issues a DELETE against resource, with body as JSON when non-empty
func (c *Client) Delete(ctx context.Context, resource string, body map[string]any) (any, error) {
	return c.Call(ctx, http.MethodDelete, resource, nil, body)
}

// Call performs one request and decodes the JSON response.
// The key parameter is always set from the client token, replacing any caller value.
func (c *Client) Call(ctx context.Context, method, resource string, query Query, body map[string]any) (any, error) {
	token, transport := c.snapshot()
	if token == "" {
		return nil, errMissingToken()
	}

	params := url.Values{}
	for k, v := range lo.OmitByValues(query, []string{""}) {
		params.Set(k, v)
	}
	params.Set("key", token)

	endpoint := c.baseURL + strings.TrimLeft(resource, "/")
	req := &Request{
		Method: method,
		URL:    endpoint,
		Header: http.Header{
			"User-Agent": {c.userAgent},
			"Accept":     {"application/json"},
		},
		Query: params,
	}
	if len(body) > 0 {
		req.JSONBody = body
	}

	label := resourceLabel(resource)
	ctx, span := tracing.StartSpan(ctx, "ghost."+strings.ToLower(method)+" "+label)
	defer span.End()
	tracing.AddContentAttributes(span, method, label)

	start := time.Now()
	resp, err := transport.Do(ctx, req)
	if err == nil && resp == nil {
		err = errors.New("transport returned no response")
	}
	if err != nil {
		terr := &TransportError{
			Method: method,
			URL:    base.RedactURL(endpoint + "?" + params.Encode()),
			Err:    err,
		}
		metrics.RecordAPICall(label, method, time.Since(start).Seconds(), false, "transport")
		tracing.RecordError(span, terr)
		c.logger.Warn("Content API call failed",
			"method", method,
			"resource", resource,
			"status", StatusCode(err),
			"error", err)
		return nil, terr
	}

	metrics.RecordResponseSize(label, len(resp.Body))

	var result any
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		derr := newDecodeError(err, resp.Body)
		metrics.RecordAPICall(label, method, time.Since(start).Seconds(), false, "decode")
		tracing.RecordError(span, derr)
		return nil, derr
	}
	if result == nil {
		derr := newDecodeError(errors.New("response body is null"), resp.Body)
		metrics.RecordAPICall(label, method, time.Since(start).Seconds(), false, "decode")
		tracing.RecordError(span, derr)
		return nil, derr
	}

	metrics.RecordAPICall(label, method, time.Since(start).Seconds(), true, "")
	return result, nil
}

// resourceLabel reduces a resource path to its collection name for metrics
func resourceLabel(resource string) string {
	r := strings.Trim(resource, "/")
	if head, _, ok := strings.Cut(r, "/"); ok {
		return head
	}
	if r == "" {
		return "root"
	}
	return r
}
