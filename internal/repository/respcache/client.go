// Package respcache caches successful search API responses in a key-value store.
package respcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/ghsearch/internal/db"
	"github.com/kailas-cloud/ghsearch/internal/domain"
)

// KeyPrefix namespaces cache entries in a shared store.
const KeyPrefix = "ghsearch:resp:"

// SearchPathSegment marks the URLs whose responses may be cached.
const SearchPathSegment = "/search/"

// store is the consumer interface for the response cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Client is a caching decorator over domain.HTTPClient. Only 2xx responses
// are stored; errors and other statuses always go to the inner client.
type Client struct {
	inner      domain.HTTPClient
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

var _ domain.HTTPClient = (*Client)(nil)

// New creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner domain.HTTPClient,
	s store,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *Client {
	return &Client{
		inner:      inner,
		store:      s,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Get returns a cached response for url and Accept header, or calls the inner client.
// Only search requests are cached; anything else, such as the health check of
// the API root, always reaches the inner client.
func (c *Client) Get(ctx context.Context, url string, header http.Header) (*domain.Response, error) {
	if !cacheable(url) {
		resp, err := c.inner.Get(ctx, url, header)
		if err != nil {
			return nil, fmt.Errorf("uncached get: %w", err)
		}
		return resp, nil
	}

	key := cacheKey(url, header)

	if resp, ok := c.getFromCache(ctx, key); ok {
		c.incCache("hit")
		return resp, nil
	}
	c.incCache("miss")

	resp, err := c.inner.Get(ctx, url, header)
	if err != nil {
		return nil, fmt.Errorf("cache fill: %w", err)
	}
	if resp.OK() {
		c.putToCache(ctx, key, resp)
	}
	return resp, nil
}

func (c *Client) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

// cacheable reports whether url targets a search endpoint.
func cacheable(url string) bool {
	path, _, _ := strings.Cut(url, "?")
	return strings.Contains(path, SearchPathSegment)
}

// cacheKey covers everything that changes the response: the full URL and the
// requested media type.
func cacheKey(url string, header http.Header) string {
	h := sha256.New()
	h.Write([]byte(url))
	h.Write([]byte{0})
	h.Write([]byte(header.Get("Accept")))
	return KeyPrefix + hex.EncodeToString(h.Sum(nil))
}

type cachedResponse struct {
	StatusCode int         `json:"status"`
	Header     http.Header `json:"header,omitempty"`
	Body       []byte      `json:"body"`
}

func (c *Client) getFromCache(ctx context.Context, key string) (*domain.Response, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached response", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	if len(data) == 0 {
		return nil, false
	}

	var cr cachedResponse
	if err := json.Unmarshal(data, &cr); err != nil {
		c.logger.Warn("Failed to parse cached response", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &domain.Response{StatusCode: cr.StatusCode, Header: cr.Header, Body: cr.Body}, true
}

func (c *Client) putToCache(ctx context.Context, key string, resp *domain.Response) {
	data, err := json.Marshal(cachedResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       resp.Body,
	})
	if err != nil {
		c.logger.Warn("Failed to encode response for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache response", zap.String("key", key), zap.Error(err))
	}
}
