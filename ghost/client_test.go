package ghost

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/howToCodeWell/ghost-content-api/internal/base"
)

const (
	testHost  = "https://demo.ghost.io"
	testToken = "22444f78447824223cefc48062"
)

// fakeTransport records every request and replies with a fixed response
type fakeTransport struct {
	mu       sync.Mutex
	requests []*Request
	status   int
	body     string
	err      error
}

func newFakeTransport(body string) *fakeTransport {
	return &fakeTransport{status: http.StatusOK, body: body}
}

func (f *fakeTransport) Do(_ context.Context, req *Request) (*Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &Response{StatusCode: f.status, Header: http.Header{}, Body: []byte(f.body)}, nil
}

func (f *fakeTransport) last(t *testing.T) *Request {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		t.Fatal("expected at least one request")
	}
	return f.requests[len(f.requests)-1]
}

func (f *fakeTransport) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(ft *fakeTransport, opts ...Option) *Client {
	opts = append([]Option{
		WithAPIToken(testToken),
		WithTransport(ft),
		WithLogger(quietLogger()),
	}, opts...)
	return New(testHost, opts...)
}

func TestNew_BaseURL(t *testing.T) {
	tests := []struct {
		name    string
		host    string
		opts    []Option
		wantURL string
	}{
		{
			name:    "default version",
			host:    "https://demo.ghost.io",
			wantURL: "https://demo.ghost.io/ghost/api/v2/content/",
		},
		{
			name:    "trailing slash trimmed",
			host:    "https://demo.ghost.io/",
			wantURL: "https://demo.ghost.io/ghost/api/v2/content/",
		},
		{
			name:    "custom version",
			host:    "https://demo.ghost.io",
			opts:    []Option{WithAPIVersion("v3")},
			wantURL: "https://demo.ghost.io/ghost/api/v3/content/",
		},
		{
			name:    "empty version keeps default",
			host:    "https://demo.ghost.io",
			opts:    []Option{WithAPIVersion("")},
			wantURL: "https://demo.ghost.io/ghost/api/v2/content/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.host, tt.opts...).BaseURL(); got != tt.wantURL {
				t.Errorf("BaseURL() = %q, want %q", got, tt.wantURL)
			}
		})
	}
}

func TestNew_DefaultTransport(t *testing.T) {
	c := New(testHost)
	if _, ok := c.Transport().(*base.Transport); !ok {
		t.Errorf("default transport should be *base.Transport, got %T", c.Transport())
	}
}

func TestAPIToken(t *testing.T) {
	if token, ok := New(testHost).APIToken(); ok || token != "" {
		t.Errorf("APIToken() = (%q, %v), want empty and false", token, ok)
	}
	if token, ok := New(testHost, WithAPIToken("abc")).APIToken(); !ok || token != "abc" {
		t.Errorf("APIToken() = (%q, %v), want (abc, true)", token, ok)
	}
}

func TestConnect_Chains(t *testing.T) {
	c := New(testHost)
	if got := c.Connect("xyz"); got != c {
		t.Error("Connect should return the receiver")
	}
	if token, ok := c.APIToken(); !ok || token != "xyz" {
		t.Errorf("APIToken() = (%q, %v) after Connect", token, ok)
	}
}

func TestSetTransport(t *testing.T) {
	first := newFakeTransport(`{"posts":[]}`)
	second := newFakeTransport(`{"posts":[]}`)
	c := newTestClient(first)

	if c.SetTransport(second) != c {
		t.Error("SetTransport should return the receiver")
	}
	if c.Transport() != Transport(second) {
		t.Error("Transport() should return the replacement")
	}

	if _, err := c.Get(context.Background(), "posts", nil); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if first.count() != 0 || second.count() != 1 {
		t.Errorf("requests: first=%d second=%d, want 0 and 1", first.count(), second.count())
	}

	c.SetTransport(nil)
	if c.Transport() != Transport(second) {
		t.Error("nil transport should be ignored")
	}
}

func TestCall_MissingToken(t *testing.T) {
	ctx := context.Background()
	body := map[string]any{"title": "x"}

	tests := []struct {
		name string
		call func(c *Client) (any, error)
	}{
		{"Get", func(c *Client) (any, error) { return c.Get(ctx, "posts", nil) }},
		{"Post", func(c *Client) (any, error) { return c.Post(ctx, "posts", body) }},
		{"Put", func(c *Client) (any, error) { return c.Put(ctx, "posts/1", body) }},
		{"Delete", func(c *Client) (any, error) { return c.Delete(ctx, "posts/1", nil) }},
		{"GetPosts", func(c *Client) (any, error) { return c.GetPosts(ctx, nil) }},
		{"GetPost", func(c *Client) (any, error) { return c.GetPost(ctx, "abc", nil) }},
		{"GetPost empty id", func(c *Client) (any, error) { return c.GetPost(ctx, "", nil) }},
		{"GetPostBySlug", func(c *Client) (any, error) { return c.GetPostBySlug(ctx, "welcome", nil) }},
		{"GetAuthors", func(c *Client) (any, error) { return c.GetAuthors(ctx, &ListOptions{Limit: "all"}) }},
		{"GetAuthor", func(c *Client) (any, error) { return c.GetAuthor(ctx, "a1", nil) }},
		{"GetAuthorBySlug", func(c *Client) (any, error) { return c.GetAuthorBySlug(ctx, "", nil) }},
		{"GetTags", func(c *Client) (any, error) { return c.GetTags(ctx, nil) }},
		{"GetTag", func(c *Client) (any, error) { return c.GetTag(ctx, "t1", nil) }},
		{"GetTagBySlug blank", func(c *Client) (any, error) { return c.GetTagBySlug(ctx, "  ", nil) }},
		{"GetPages", func(c *Client) (any, error) { return c.GetPages(ctx, &ContentListOptions{Format: "html"}) }},
		{"GetPage", func(c *Client) (any, error) { return c.GetPage(ctx, "", nil) }},
		{"GetPageBySlug", func(c *Client) (any, error) { return c.GetPageBySlug(ctx, "about", nil) }},
		{"GetSettings", func(c *Client) (any, error) { return c.GetSettings(ctx) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft := newFakeTransport(`{}`)
			c := New(testHost, WithTransport(ft), WithLogger(quietLogger()))

			result, err := tt.call(c)
			if !IsConfigurationError(err) {
				t.Fatalf("expected ConfigurationError, got %T: %v", err, err)
			}
			if err.Error() != "API token must be set" {
				t.Errorf("error = %q", err.Error())
			}
			if result != nil {
				t.Errorf("result = %v, want nil", result)
			}
			if ft.count() != 0 {
				t.Errorf("%d requests sent without a token", ft.count())
			}
		})
	}
}

func TestGet_QueryFiltering(t *testing.T) {
	ft := newFakeTransport(`{"posts":[]}`)
	c := newTestClient(ft)

	_, err := c.Get(context.Background(), "posts", Query{
		"include": "tags",
		"fields":  "",
		"filter":  "",
		"key":     "caller-supplied",
	})
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	req := ft.last(t)
	if req.Method != http.MethodGet {
		t.Errorf("Method = %s", req.Method)
	}
	if req.URL != "https://demo.ghost.io/ghost/api/v2/content/posts" {
		t.Errorf("URL = %s", req.URL)
	}
	if req.Query.Get("include") != "tags" {
		t.Errorf("include = %q", req.Query.Get("include"))
	}
	if req.Query.Has("fields") || req.Query.Has("filter") {
		t.Errorf("empty values should be dropped, got %v", req.Query)
	}
	if got := req.Query["key"]; !reflect.DeepEqual(got, []string{testToken}) {
		t.Errorf("key = %v, want exactly the token", got)
	}
	if req.JSONBody != nil {
		t.Error("GET should carry no body")
	}
}

func TestCall_Headers(t *testing.T) {
	tests := []struct {
		name   string
		opts   []Option
		wantUA string
	}{
		{"default agent", nil, DefaultUserAgent},
		{"custom agent", []Option{WithUserAgent("my-agent/1.0")}, "my-agent/1.0"},
		{"empty agent ignored", []Option{WithUserAgent("")}, DefaultUserAgent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft := newFakeTransport(`{}`)
			if _, err := newTestClient(ft, tt.opts...).Get(context.Background(), "settings", nil); err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			req := ft.last(t)
			if got := req.Header.Get("User-Agent"); got != tt.wantUA {
				t.Errorf("User-Agent = %q, want %q", got, tt.wantUA)
			}
			if got := req.Header.Get("Accept"); got != "application/json" {
				t.Errorf("Accept = %q", got)
			}
		})
	}
}

func TestCall_LeadingSlashTrimmed(t *testing.T) {
	ft := newFakeTransport(`{}`)
	if _, err := newTestClient(ft).Get(context.Background(), "/tags", nil); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got := ft.last(t).URL; got != "https://demo.ghost.io/ghost/api/v2/content/tags" {
		t.Errorf("URL = %s", got)
	}
}

func TestMutations(t *testing.T) {
	tests := []struct {
		name   string
		method string
		call   func(c *Client, body map[string]any) (any, error)
	}{
		{"post", http.MethodPost, func(c *Client, body map[string]any) (any, error) {
			return c.Post(context.Background(), "posts", body)
		}},
		{"put", http.MethodPut, func(c *Client, body map[string]any) (any, error) {
			return c.Put(context.Background(), "posts", body)
		}},
		{"delete", http.MethodDelete, func(c *Client, body map[string]any) (any, error) {
			return c.Delete(context.Background(), "posts", body)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft := newFakeTransport(`{"posts":[{"title":"Hello"}]}`)
			c := newTestClient(ft)

			result, err := tt.call(c, map[string]any{"title": "Hello"})
			if err != nil {
				t.Fatalf("%s failed: %v", tt.name, err)
			}
			if result == nil {
				t.Error("expected a decoded result")
			}

			req := ft.last(t)
			if req.Method != tt.method {
				t.Errorf("Method = %s, want %s", req.Method, tt.method)
			}
			if !reflect.DeepEqual(req.JSONBody, map[string]any{"title": "Hello"}) {
				t.Errorf("JSONBody = %v", req.JSONBody)
			}
			if len(req.Query) != 1 || req.Query.Get("key") != testToken {
				t.Errorf("mutations carry only the key parameter, got %v", req.Query)
			}
		})
	}
}

func TestMutation_EmptyBodyNotSent(t *testing.T) {
	ft := newFakeTransport(`{}`)
	if _, err := newTestClient(ft).Delete(context.Background(), "posts/1", nil); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if ft.last(t).JSONBody != nil {
		t.Error("empty body should not be sent")
	}
}

func TestCall_DecodeErrors(t *testing.T) {
	for _, body := range []string{"not json", `{"posts":[`, "", "null"} {
		t.Run(fmt.Sprintf("%q", body), func(t *testing.T) {
			result, err := newTestClient(newFakeTransport(body)).Get(context.Background(), "posts", nil)
			if result != nil {
				t.Errorf("result = %v, want nil", result)
			}
			var derr *DecodeError
			if !errors.As(err, &derr) {
				t.Fatalf("expected DecodeError, got %T: %v", err, err)
			}
			if derr.Snippet != body {
				t.Errorf("Snippet = %q, want %q", derr.Snippet, body)
			}
		})
	}
}

func TestDecodeError_SnippetTruncated(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"ascii", strings.Repeat("x", 500)},
		{"multi-byte rune at the limit", strings.Repeat("x", snippetLimit-1) + strings.Repeat("é", 50)},
		{"cjk", strings.Repeat("記事", 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestClient(newFakeTransport(tt.body)).Get(context.Background(), "posts", nil)

			var derr *DecodeError
			if !errors.As(err, &derr) {
				t.Fatalf("expected DecodeError, got %v", err)
			}
			if !strings.HasSuffix(derr.Snippet, "...") {
				t.Errorf("truncated snippet should end with ..., got %q", derr.Snippet)
			}
			kept := strings.TrimSuffix(derr.Snippet, "...")
			if len(kept) > snippetLimit {
				t.Errorf("kept %d bytes, limit is %d", len(kept), snippetLimit)
			}
			if !utf8.ValidString(kept) {
				t.Errorf("snippet splits a rune: %q", derr.Snippet)
			}
			if !strings.HasPrefix(tt.body, kept) {
				t.Error("snippet should be a prefix of the body")
			}
		})
	}
}

func TestCall_TransportError(t *testing.T) {
	cause := errors.New("connection refused")
	ft := newFakeTransport("")
	ft.err = cause

	_, err := newTestClient(ft).Get(context.Background(), "posts", Query{"limit": "5"})
	if !errors.Is(err, cause) {
		t.Fatalf("error should wrap the cause, got %v", err)
	}

	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TransportError, got %T", err)
	}
	if terr.Method != http.MethodGet {
		t.Errorf("Method = %s", terr.Method)
	}
	if !strings.Contains(terr.URL, "key=REDACTED") || !strings.Contains(terr.URL, "limit=5") {
		t.Errorf("URL = %s", terr.URL)
	}
	if strings.Contains(err.Error(), testToken) {
		t.Error("error text leaks the API key")
	}
}

func TestCall_NilResponse(t *testing.T) {
	c := New(testHost, WithAPIToken(testToken), WithLogger(quietLogger()),
		WithTransport(TransportFunc(func(context.Context, *Request) (*Response, error) {
			return nil, nil
		})))
	if _, err := c.Get(context.Background(), "posts", nil); !IsTransportError(err) {
		t.Errorf("expected TransportError, got %v", err)
	}
}

func TestTransportFunc(t *testing.T) {
	var got *Request
	c := New(testHost, WithAPIToken(testToken), WithLogger(quietLogger()),
		WithTransport(TransportFunc(func(_ context.Context, req *Request) (*Response, error) {
			got = req
			return &Response{StatusCode: http.StatusOK, Body: []byte(`{"tags":[]}`)}, nil
		})))

	result, err := c.Get(context.Background(), "tags", nil)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !reflect.DeepEqual(result, map[string]any{"tags": []any{}}) {
		t.Errorf("result = %v", result)
	}
	if got == nil || got.URL != "https://demo.ghost.io/ghost/api/v2/content/tags" {
		t.Errorf("unexpected request %+v", got)
	}
}

func TestConcurrentConnect(t *testing.T) {
	ft := newFakeTransport(`{}`)
	c := newTestClient(ft)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			c.Connect(fmt.Sprintf("token-%d", i))
		}(i)
		go func() {
			defer wg.Done()
			_, _ = c.Get(context.Background(), "settings", nil)
		}()
	}
	wg.Wait()

	if ft.count() != 20 {
		t.Errorf("requests = %d, want 20", ft.count())
	}
}

func TestClient_HTTPStatusError(t *testing.T) {
	var (
		mu              sync.Mutex
		gotPath, gotKey string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		gotPath, gotKey = r.URL.Path, r.URL.Query().Get("key")
		mu.Unlock()
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errors":[{"message":"Resource not found error, cannot read post.","type":"NotFoundError"}]}`))
	}))
	defer server.Close()

	c := New(server.URL,
		WithAPIToken(testToken),
		WithLogger(quietLogger()),
		WithTransport(base.NewTransport(base.WithHTTPClient(server.Client()), base.WithLogger(quietLogger()))),
	)

	_, err := c.GetPost(context.Background(), "missing", nil)
	if !IsTransportError(err) || !IsNotFound(err) {
		t.Fatalf("expected a 404 TransportError, got %v", err)
	}
	if StatusCode(err) != http.StatusNotFound {
		t.Errorf("StatusCode = %d", StatusCode(err))
	}
	if !strings.Contains(err.Error(), "Resource not found") {
		t.Errorf("error should carry the Ghost message: %v", err)
	}
	if strings.Contains(err.Error(), testToken) {
		t.Error("error text leaks the API key")
	}
	mu.Lock()
	defer mu.Unlock()
	if gotPath != "/ghost/api/v2/content/posts/missing" || gotKey != testToken {
		t.Errorf("server saw path=%s key=%s", gotPath, gotKey)
	}
}

func TestClient_HTTPRoundTrip(t *testing.T) {
	var (
		mu                sync.Mutex
		gotUA, gotInclude string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		gotUA, gotInclude = r.Header.Get("User-Agent"), r.URL.Query().Get("include")
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"posts":[{"id":"1","title":"Welcome"}],"meta":{"pagination":{"page":1,"limit":15,"pages":1,"total":1,"next":null,"prev":null}}}`))
	}))
	defer server.Close()

	cfg := &Config{Host: server.URL, APIVersion: "v2", APIToken: testToken, UserAgent: DefaultUserAgent}
	result, err := NewFromConfig(cfg, quietLogger()).
		GetPosts(context.Background(), &ContentListOptions{ListOptions: ListOptions{Include: "tags,authors"}})
	if err != nil {
		t.Fatalf("GetPosts failed: %v", err)
	}

	items, ok := Items(result, ResourcePosts)
	if !ok || len(items) != 1 {
		t.Fatalf("items = %v", items)
	}
	if title := items[0].(map[string]any)["title"]; title != "Welcome" {
		t.Errorf("title = %v", title)
	}
	mu.Lock()
	defer mu.Unlock()
	if gotUA != DefaultUserAgent || gotInclude != "tags,authors" {
		t.Errorf("server saw User-Agent=%q include=%q", gotUA, gotInclude)
	}
}
