package ghsearch

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/kailas-cloud/ghsearch/internal/domain/resource"
)

// TextMatchMediaType asks the search API to include text-match metadata.
const TextMatchMediaType = "application/vnd.github.v3.text-match+json"

// QueryBuilder is implemented by every resource builder.
type QueryBuilder interface {
	// Endpoint returns the resource path appended to the base URL.
	Endpoint() string
	// BuildQuery serializes the builder state into an encoded query string.
	BuildQuery() (string, error)
}

// SearchOption tweaks a single Search call.
type SearchOption func(*searchConfig)

type searchConfig struct {
	textMatches bool
}

// TextMatches requests text-match metadata in the response.
func TextMatches() SearchOption {
	return func(c *searchConfig) {
		c.textMatches = true
	}
}

// URL returns the full request URL for qb without performing the request.
func (c *Client) URL(qb QueryBuilder) (string, error) {
	q, err := qb.BuildQuery()
	if err != nil {
		return "", err
	}
	return joinURL(c.baseURL, qb.Endpoint()) + "?" + q, nil
}

// joinURL puts exactly one slash between base and endpoint; endpoint
// constants are inconsistent about the leading slash.
func joinURL(base, endpoint string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(endpoint, "/")
}

// execute performs one GET for qb and returns the response unmodified.
// newDrops is recorded before the query is built so strict mode failures are observed too.
func (c *Client) execute(
	ctx context.Context, kind resource.Kind, qb QueryBuilder, newDrops int, opts []SearchOption,
) (resp *Response, err error) {
	op := "search_" + string(kind)
	start := time.Now()
	defer func() { c.obs.observe(op, start, resp, err) }()
	c.obs.droppedQualifiers(op, newDrops)

	var cfg searchConfig
	for _, o := range opts {
		o(&cfg)
	}

	fullURL, err := c.URL(qb)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", kind, err)
	}

	header := http.Header{}
	if cfg.textMatches {
		header.Set("Accept", TextMatchMediaType)
	}

	resp, err = c.http.Get(ctx, fullURL, header)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", kind, err)
	}
	return resp, nil
}
