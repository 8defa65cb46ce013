package search

import (
	"context"

	"github.com/kailas-cloud/ghsearch"
)

// Builders starts a fresh builder per resource. Implemented by *ghsearch.Client.
type Builders interface {
	Code() *ghsearch.CodeSearch
	Commits() *ghsearch.CommitSearch
	Issues() *ghsearch.IssueSearch
	Labels() *ghsearch.LabelSearch
	Repositories() *ghsearch.RepositorySearch
	Topics() *ghsearch.TopicSearch
	Users() *ghsearch.UserSearch
	URL(qb ghsearch.QueryBuilder) (string, error)
}

// Prepared is a fully configured builder ready to run.
type Prepared interface {
	ghsearch.QueryBuilder
	Search(ctx context.Context, opts ...ghsearch.SearchOption) (*ghsearch.Response, error)
}
