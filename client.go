package ghsearch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/ghsearch/internal/domain"
	"github.com/kailas-cloud/ghsearch/internal/transport/rest"
)

// Response is the raw search API response: status, headers and body, unparsed.
type Response = domain.Response

// HTTPClient performs the GET requests. Implementations return non-2xx
// statuses as responses and only fail on transport errors.
type HTTPClient = domain.HTTPClient

// Client is the ghsearch entry point. It is immutable after New and safe for concurrent use.
type Client struct {
	baseURL string
	http    HTTPClient
	strict  bool
	obs     *observer
}

// New creates a Client.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{baseURL: DefaultBaseURL}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.baseURL == "" {
		return nil, errors.New("ghsearch: base url required")
	}
	u, err := url.Parse(cfg.baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("ghsearch: invalid base url %q", cfg.baseURL)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = rest.New(rest.Config{
			Token:     cfg.token,
			UserAgent: cfg.userAgent,
			Timeout:   cfg.timeout,
			Logger:    zap.NewNop(),
		})
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.baseURL, "/"),
		http:    httpClient,
		strict:  cfg.strictOperators,
		obs:     obs,
	}, nil
}

// BaseURL returns the origin endpoints are appended to, without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// Ping checks that the search API origin answers with a non-5xx status.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, nil, err) }()

	resp, err := c.http.Get(ctx, c.baseURL+"/", http.Header{})
	if err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("ping: status %d: %w", resp.StatusCode, ErrUpstreamUnavailable)
	}
	return nil
}

// Code starts a code search.
func (c *Client) Code() *CodeSearch { return newCodeSearch(c) }

// Commits starts a commit search.
func (c *Client) Commits() *CommitSearch { return newCommitSearch(c) }

// Issues starts an issue and pull request search.
func (c *Client) Issues() *IssueSearch { return newIssueSearch(c) }

// Labels starts a label search. SetRepositoryID is required before Search.
func (c *Client) Labels() *LabelSearch { return newLabelSearch(c) }

// Repositories starts a repository search.
func (c *Client) Repositories() *RepositorySearch { return newRepositorySearch(c) }

// Topics starts a topic search.
func (c *Client) Topics() *TopicSearch { return newTopicSearch(c) }

// Users starts a user search.
func (c *Client) Users() *UserSearch { return newUserSearch(c) }
