package ghsearch

import (
	"context"

	"github.com/kailas-cloud/ghsearch/internal/domain/query"
	"github.com/kailas-cloud/ghsearch/internal/domain/resource"
)

// LabelSearch builds a search over the labels of one repository. It accepts
// keywords and sort/order but no qualifiers.
// Obtain one from Client.Labels; the zero value is not usable.
type LabelSearch struct {
	keywordPart[*LabelSearch]
	sortPart[*LabelSearch]
	client       *Client
	repositoryID int64
	repoSet      bool
}

var _ QueryBuilder = (*LabelSearch)(nil)

func newLabelSearch(c *Client) *LabelSearch {
	b := &LabelSearch{client: c}
	b.keywordPart.self = b
	b.sortPart.self = b
	return b
}

// SetRepositoryID selects the repository whose labels are searched.
func (b *LabelSearch) SetRepositoryID(id int64) *LabelSearch {
	b.repositoryID = id
	b.repoSet = true
	return b
}

// RepositoryID returns the repository id and whether it was set.
func (b *LabelSearch) RepositoryID() (int64, bool) { return b.repositoryID, b.repoSet }

// Endpoint implements QueryBuilder.
func (b *LabelSearch) Endpoint() string { return resource.Labels.Endpoint() }

// BuildQuery implements QueryBuilder. It fails with ErrRepositoryIDRequired
// until SetRepositoryID is called.
func (b *LabelSearch) BuildQuery() (string, error) {
	if !b.repoSet {
		return "", ErrRepositoryIDRequired
	}
	return query.Labels(b.repositoryID, &b.keywords, &b.sortOrder).Encode(), nil
}

// Search performs the request.
func (b *LabelSearch) Search(ctx context.Context, opts ...SearchOption) (*Response, error) {
	return b.client.execute(ctx, resource.Labels, b, 0, opts)
}
