package ghsearch

import (
	"context"

	"github.com/kailas-cloud/ghsearch/internal/domain/qualifier"
	"github.com/kailas-cloud/ghsearch/internal/domain/query"
	"github.com/kailas-cloud/ghsearch/internal/domain/resource"
)

// CommitSearch builds a search over commits.
// Obtain one from Client.Commits; the zero value is not usable.
type CommitSearch struct {
	keywordPart[*CommitSearch]
	qualifierPart[*CommitSearch]
	sortPart[*CommitSearch]
	client *Client
}

var _ QueryBuilder = (*CommitSearch)(nil)

func newCommitSearch(c *Client) *CommitSearch {
	b := &CommitSearch{client: c}
	b.keywordPart.self = b
	b.qualifierPart.self = b
	b.sortPart.self = b
	return b
}

// Endpoint implements QueryBuilder.
func (b *CommitSearch) Endpoint() string { return resource.Commits.Endpoint() }

// BuildQuery implements QueryBuilder.
func (b *CommitSearch) BuildQuery() (string, error) {
	if err := b.checkDropped(b.client.strict); err != nil {
		return "", err
	}
	return query.Standard(&b.keywords, &b.qualifiers, &b.sortOrder).Encode(), nil
}

// Search performs the request.
func (b *CommitSearch) Search(ctx context.Context, opts ...SearchOption) (*Response, error) {
	return b.client.execute(ctx, resource.Commits, b, b.newDrops(), opts)
}

// ByAuthor matches commits authored by a user (author:USERNAME).
func (b *CommitSearch) ByAuthor(username string) *CommitSearch { return b.is("author", username) }

// ByCommitter matches commits committed by a user (committer:USERNAME).
func (b *CommitSearch) ByCommitter(username string) *CommitSearch {
	return b.is("committer", username)
}

// AuthorNameContains matches the author name (author-name:NAME).
func (b *CommitSearch) AuthorNameContains(needle string) *CommitSearch {
	return b.is("author-name", needle)
}

// CommitterNameContains matches the committer name (committer-name:NAME).
func (b *CommitSearch) CommitterNameContains(needle string) *CommitSearch {
	return b.is("committer-name", needle)
}

// ByAuthorEmail matches the author email (author-email:EMAIL).
func (b *CommitSearch) ByAuthorEmail(email string) *CommitSearch {
	return b.is("author-email", email)
}

// ByCommitterEmail matches the committer email (committer-email:EMAIL).
func (b *CommitSearch) ByCommitterEmail(email string) *CommitSearch {
	return b.is("committer-email", email)
}

// AuthorDate filters on the authored date, e.g. AuthorDate("2020-01-01", GreaterThan).
func (b *CommitSearch) AuthorDate(date string, op Operator) *CommitSearch {
	return b.date("author-date", date, op)
}

// AuthorDateRange limits the authored date to a span (author-date:FROM..TO).
func (b *CommitSearch) AuthorDateRange(first, second string) *CommitSearch {
	return b.dateRange("author-date", first, second)
}

// CommitterDate filters on the committed date (committer-date:OP DATE).
func (b *CommitSearch) CommitterDate(date string, op Operator) *CommitSearch {
	return b.date("committer-date", date, op)
}

// CommitterDateRange limits the committed date to a span (committer-date:FROM..TO).
func (b *CommitSearch) CommitterDateRange(first, second string) *CommitSearch {
	return b.dateRange("committer-date", first, second)
}

// OnlyMergeCommits keeps merge commits (merge:true).
func (b *CommitSearch) OnlyMergeCommits() *CommitSearch { return b.is("merge", "true") }

// OnlyNonMergeCommits drops merge commits (merge:false).
func (b *CommitSearch) OnlyNonMergeCommits() *CommitSearch { return b.is("merge", "false") }

// ByHash matches a commit SHA or prefix (hash:SHA).
func (b *CommitSearch) ByHash(hash string) *CommitSearch { return b.is("hash", hash) }

// ByParent matches children of a commit (parent:SHA).
func (b *CommitSearch) ByParent(hash string) *CommitSearch { return b.is("parent", hash) }

// ByTree matches commits with a tree SHA (tree:SHA).
func (b *CommitSearch) ByTree(hash string) *CommitSearch { return b.is("tree", hash) }

// ByUser limits to repositories owned by a user (user:USERNAME).
func (b *CommitSearch) ByUser(username string) *CommitSearch { return b.is("user", username) }

// InOrganization limits to repositories of an organization (org:ORG).
func (b *CommitSearch) InOrganization(org string) *CommitSearch { return b.is("org", org) }

// InRepository limits to a single repository (repo:OWNER/REPO).
func (b *CommitSearch) InRepository(owner, repo string) *CommitSearch {
	return b.is("repo", qualifier.Path(owner, repo))
}

// OnlyPublic keeps public repositories (is:public).
func (b *CommitSearch) OnlyPublic() *CommitSearch { return b.is("is", "public") }

// OnlyPrivate keeps private repositories (is:private).
func (b *CommitSearch) OnlyPrivate() *CommitSearch { return b.is("is", "private") }
