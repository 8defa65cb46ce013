// Package rest is the default HTTP collaborator for search requests,
// built on net/http with an optional static OAuth2 bearer token.
package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/kailas-cloud/ghsearch/internal/domain"
	"github.com/kailas-cloud/ghsearch/internal/metrics"
)

// Default headers sent with every request unless the caller overrides them.
const (
	DefaultAccept    = "application/vnd.github+json"
	DefaultUserAgent = "ghsearch"
	ContentTypeJSON  = "application/json"
)

// maxBodyBytes caps how much of a response body is buffered.
const maxBodyBytes = 32 << 20

// Config holds the transport settings.
type Config struct {
	Token     string
	UserAgent string
	Timeout   time.Duration
	// Base is the underlying client; nil uses a fresh http.Client.
	Base   *http.Client
	Logger *zap.Logger
}

// Client implements domain.HTTPClient.
type Client struct {
	http      *http.Client
	userAgent string
	logger    *zap.Logger
}

var _ domain.HTTPClient = (*Client)(nil)

// New creates the transport. With a token the requests carry
// "Authorization: Bearer <token>"; the token is never refreshed.
func New(cfg Config) *Client {
	base := cfg.Base
	if base == nil {
		base = &http.Client{}
	}

	var hc *http.Client
	if cfg.Token != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
		hc = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token}))
	} else {
		cp := *base
		hc = &cp
	}
	if cfg.Timeout > 0 {
		hc.Timeout = cfg.Timeout
	}

	ua := cfg.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{http: hc, userAgent: ua, logger: logger}
}

// Get performs one GET. Any status the server answers with is returned as a
// response; only transport failures are errors, wrapped with
// domain.ErrUpstreamUnavailable.
func (c *Client) Get(ctx context.Context, rawURL string, header http.Header) (*domain.Response, error) {
	endpoint := endpointLabel(rawURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", DefaultAccept)
	req.Header.Set("Content-Type", ContentTypeJSON)
	req.Header.Set("User-Agent", c.userAgent)
	for k, vs := range header {
		req.Header.Del(k)
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		metrics.UpstreamErrorsTotal.WithLabelValues(endpoint, errorType(err)).Inc()
		c.logger.Warn("search api request failed",
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return nil, fmt.Errorf("get %s: %w: %w", endpoint, domain.ErrUpstreamUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		metrics.UpstreamErrorsTotal.WithLabelValues(endpoint, "read_body").Inc()
		return nil, fmt.Errorf("read %s body: %w: %w", endpoint, domain.ErrUpstreamUnavailable, err)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, metrics.StatusClass(resp.StatusCode)).Inc()
	metrics.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	c.logger.Debug("search api request",
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	return &domain.Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		Body:       body,
	}, nil
}

// endpointLabel reduces a URL to its path for metric labels.
func endpointLabel(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" {
		return "/"
	}
	return u.Path
}

func errorType(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	}
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Timeout() {
		return "timeout"
	}
	return "transport"
}
