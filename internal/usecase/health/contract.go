package health

import "context"

// CachePinger checks response cache store availability.
type CachePinger interface {
	Ping(ctx context.Context) error
}

// UpstreamChecker checks that the search API answers.
type UpstreamChecker interface {
	Ping(ctx context.Context) error
}
