package ghsearch

import (
	"context"

	"github.com/kailas-cloud/ghsearch/internal/domain/query"
	"github.com/kailas-cloud/ghsearch/internal/domain/resource"
)

// TopicSearch builds a search over topics. Only q is sent; the API ranks
// topics itself.
// Obtain one from Client.Topics; the zero value is not usable.
type TopicSearch struct {
	keywordPart[*TopicSearch]
	qualifierPart[*TopicSearch]
	client *Client
}

var _ QueryBuilder = (*TopicSearch)(nil)

func newTopicSearch(c *Client) *TopicSearch {
	b := &TopicSearch{client: c}
	b.keywordPart.self = b
	b.qualifierPart.self = b
	return b
}

// Endpoint implements QueryBuilder.
func (b *TopicSearch) Endpoint() string { return resource.Topics.Endpoint() }

// BuildQuery implements QueryBuilder.
func (b *TopicSearch) BuildQuery() (string, error) {
	if err := b.checkDropped(b.client.strict); err != nil {
		return "", err
	}
	return query.Topics(&b.keywords, &b.qualifiers).Encode(), nil
}

// Search performs the request.
func (b *TopicSearch) Search(ctx context.Context, opts ...SearchOption) (*Response, error) {
	return b.client.execute(ctx, resource.Topics, b, b.newDrops(), opts)
}
