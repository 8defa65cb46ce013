package search

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/ghsearch"
	"github.com/kailas-cloud/ghsearch/internal/domain"
	"github.com/kailas-cloud/ghsearch/internal/domain/resource"
	"github.com/kailas-cloud/ghsearch/internal/logger"
)

// Batch defaults.
const (
	DefaultBatchLimit   = 4
	DefaultMaxBatchSize = 20
)

// Result is the per-item outcome of a batch search.
type Result struct {
	Response *ghsearch.Response
	Err      error
}

// Service applies declarative requests onto builders and runs them.
type Service struct {
	client       Builders
	batchLimit   int
	maxBatchSize int
}

// New creates a search service.
func New(client Builders) *Service {
	return &Service{
		client:       client,
		batchLimit:   DefaultBatchLimit,
		maxBatchSize: DefaultMaxBatchSize,
	}
}

// WithBatchLimit configures how many batch items run concurrently.
func (s *Service) WithBatchLimit(n int) *Service {
	if n > 0 {
		s.batchLimit = n
	}
	return s
}

// WithMaxBatchSize configures the maximum batch size.
func (s *Service) WithMaxBatchSize(size int) *Service {
	if size > 0 {
		s.maxBatchSize = size
	}
	return s
}

// Prepare validates req and returns a configured builder.
func (s *Service) Prepare(req *Request) (Prepared, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	switch req.Kind {
	case resource.Code:
		b := s.client.Code().AddKeywords(req.Keywords...).Apply(req.Filters...)
		return withSort(b, req.Sort, req.Order), nil
	case resource.Commits:
		b := s.client.Commits().AddKeywords(req.Keywords...).Apply(req.Filters...)
		return withSort(b, req.Sort, req.Order), nil
	case resource.Issues:
		b := s.client.Issues().AddKeywords(req.Keywords...).Apply(req.Filters...)
		return withSort(b, req.Sort, req.Order), nil
	case resource.Labels:
		b := s.client.Labels().SetRepositoryID(*req.RepositoryID).AddKeywords(req.Keywords...)
		return withSort(b, req.Sort, req.Order), nil
	case resource.Repositories:
		b := s.client.Repositories().AddKeywords(req.Keywords...).Apply(req.Filters...)
		return withSort(b, req.Sort, req.Order), nil
	case resource.Topics:
		return s.client.Topics().AddKeywords(req.Keywords...).Apply(req.Filters...), nil
	case resource.Users:
		b := s.client.Users().AddKeywords(req.Keywords...).Apply(req.Filters...)
		return withSort(b, req.Sort, req.Order), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownResource, req.Kind)
	}
}

// URL returns the request URL req would produce, without sending it.
func (s *Service) URL(req *Request) (string, error) {
	p, err := s.Prepare(req)
	if err != nil {
		return "", err
	}
	u, err := s.client.URL(p)
	if err != nil {
		return "", fmt.Errorf("build url: %w", err)
	}
	return u, nil
}

// Search runs one request and returns the upstream response unchanged.
func (s *Service) Search(ctx context.Context, req *Request) (*ghsearch.Response, error) {
	p, err := s.Prepare(req)
	if err != nil {
		return nil, err
	}
	resp, err := p.Search(ctx, req.options()...)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", req.Kind, err)
	}
	return resp, nil
}

// Batch runs independent requests concurrently. Results keep request order;
// a failing item does not cancel the others.
func (s *Service) Batch(ctx context.Context, reqs []Request) ([]Result, error) {
	if len(reqs) > s.maxBatchSize {
		return nil, fmt.Errorf("%w: %d items, max %d", domain.ErrBatchTooLarge, len(reqs), s.maxBatchSize)
	}

	results := make([]Result, len(reqs))
	var g errgroup.Group
	g.SetLimit(s.batchLimit)

	for i := range reqs {
		g.Go(func() error {
			resp, err := s.Search(ctx, &reqs[i])
			results[i] = Result{Response: resp, Err: err}
			if err != nil {
				logger.FromContext(ctx).Warn("batch item failed",
					zap.Int("index", i),
					zap.String("resource", string(reqs[i].Kind)),
					zap.Error(err),
				)
			}
			return nil
		})
	}
	_ = g.Wait()

	return results, nil
}

// sortable is satisfied by every builder with sort/order state.
type sortable[B any] interface {
	SetSort(sort string) B
	SetOrder(order string) B
}

// withSort overrides sort and order only when given, keeping the builder defaults otherwise.
func withSort[B sortable[B]](b B, sort, order string) B {
	if sort != "" {
		b = b.SetSort(sort)
	}
	if order != "" {
		b = b.SetOrder(order)
	}
	return b
}
