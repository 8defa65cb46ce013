package ghsearch

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultBaseURL is the search API origin used unless WithBaseURL is given.
const DefaultBaseURL = "https://api.github.com"

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	baseURL string

	httpClient HTTPClient
	token      string
	userAgent  string
	timeout    time.Duration

	strictOperators bool

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithBaseURL sets the origin every endpoint is appended to.
// Defaults to https://api.github.com.
func WithBaseURL(u string) Option {
	return optionFunc(func(c *clientConfig) {
		c.baseURL = u
	})
}

// WithHTTPClient replaces the default net/http transport.
// Token, user agent and timeout options are ignored when it is set.
func WithHTTPClient(h HTTPClient) Option {
	return optionFunc(func(c *clientConfig) {
		c.httpClient = h
	})
}

// WithToken sends a static bearer token with every request.
func WithToken(token string) Option {
	return optionFunc(func(c *clientConfig) {
		c.token = token
	})
}

// WithUserAgent sets the User-Agent header of the default transport.
func WithUserAgent(ua string) Option {
	return optionFunc(func(c *clientConfig) {
		c.userAgent = ua
	})
}

// WithTimeout bounds each request of the default transport. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.timeout = d
	})
}

// WithStrictOperators makes BuildQuery and Search fail with ErrInvalidOperator
// when a single-range qualifier was dropped. Off by default.
func WithStrictOperators() Option {
	return optionFunc(func(c *clientConfig) {
		c.strictOperators = true
	})
}

// WithLogger enables structured logging of searches.
// Pass nil to disable (default).
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers search metrics (counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
