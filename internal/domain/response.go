package domain

import (
	"context"
	"net/http"
)

// Response is the raw outcome of a search request. Nothing is parsed.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports whether the status code is 2xx.
func (r *Response) OK() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// HTTPClient performs a single GET against the search API.
// Non-2xx statuses are returned as responses, not errors.
type HTTPClient interface {
	Get(ctx context.Context, url string, header http.Header) (*Response, error)
}
