package ghsearch

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
)

// mockHTTPClient records requests and replies with a canned response.
type mockHTTPClient struct {
	mu      sync.Mutex
	urls    []string
	headers []http.Header
	resp    *Response
	err     error
}

func (m *mockHTTPClient) Get(_ context.Context, url string, header http.Header) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.urls = append(m.urls, url)
	m.headers = append(m.headers, header.Clone())
	if m.err != nil {
		return nil, m.err
	}
	if m.resp != nil {
		return m.resp, nil
	}
	return &Response{StatusCode: http.StatusOK, Header: http.Header{}, Body: []byte(`{}`)}, nil
}

func (m *mockHTTPClient) lastURL(t *testing.T) string {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.urls) == 0 {
		t.Fatal("no request recorded")
	}
	return m.urls[len(m.urls)-1]
}

func newTestClient(t *testing.T, opts ...Option) (*Client, *mockHTTPClient) {
	t.Helper()
	mock := &mockHTTPClient{}
	c, err := New(append([]Option{WithHTTPClient(mock)}, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, mock
}

func TestNew_Defaults(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.BaseURL() != DefaultBaseURL {
		t.Errorf("base url = %q, want %q", c.BaseURL(), DefaultBaseURL)
	}
	if c.http == nil {
		t.Error("expected default transport")
	}
	if c.strict {
		t.Error("strict operators must be off by default")
	}
}

func TestNew_InvalidBaseURL(t *testing.T) {
	for _, u := range []string{"", "not a url", "/relative", "api.github.com"} {
		if _, err := New(WithBaseURL(u)); err == nil {
			t.Errorf("expected error for base url %q", u)
		}
	}
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	c, _ := newTestClient(t, WithBaseURL("https://ghe.example.com/api/v3/"))
	if c.BaseURL() != "https://ghe.example.com/api/v3" {
		t.Errorf("base url = %q", c.BaseURL())
	}
}

func TestClientOptions(t *testing.T) {
	cfg := &clientConfig{}
	opts := []Option{
		WithBaseURL("http://localhost:8080"),
		WithToken("tok"),
		WithUserAgent("ua"),
		WithStrictOperators(),
	}
	for _, o := range opts {
		o.apply(cfg)
	}
	if cfg.baseURL != "http://localhost:8080" {
		t.Errorf("baseURL = %q", cfg.baseURL)
	}
	if cfg.token != "tok" || cfg.userAgent != "ua" {
		t.Errorf("token/userAgent = %q/%q", cfg.token, cfg.userAgent)
	}
	if !cfg.strictOperators {
		t.Error("expected strictOperators")
	}
}

func TestPing(t *testing.T) {
	c, mock := newTestClient(t)
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mock.lastURL(t); got != "https://api.github.com/" {
		t.Errorf("ping url = %q", got)
	}

	mock.resp = &Response{StatusCode: http.StatusServiceUnavailable}
	if err := c.Ping(context.Background()); !errors.Is(err, ErrUpstreamUnavailable) {
		t.Errorf("expected ErrUpstreamUnavailable for 503, got %v", err)
	}

	mock.resp = &Response{StatusCode: http.StatusUnauthorized}
	if err := c.Ping(context.Background()); err != nil {
		t.Errorf("4xx means reachable, got %v", err)
	}

	transportErr := errors.New("dial tcp: refused")
	mock.err = transportErr
	if err := c.Ping(context.Background()); !errors.Is(err, transportErr) {
		t.Errorf("expected transport error, got %v", err)
	}
}
