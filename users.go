package ghsearch

import (
	"context"

	"github.com/kailas-cloud/ghsearch/internal/domain/query"
	"github.com/kailas-cloud/ghsearch/internal/domain/resource"
)

// UserSearch builds a search over users and organizations.
// Obtain one from Client.Users; the zero value is not usable.
type UserSearch struct {
	keywordPart[*UserSearch]
	qualifierPart[*UserSearch]
	sortPart[*UserSearch]
	client *Client
}

var _ QueryBuilder = (*UserSearch)(nil)

func newUserSearch(c *Client) *UserSearch {
	b := &UserSearch{client: c}
	b.keywordPart.self = b
	b.qualifierPart.self = b
	b.sortPart.self = b
	return b
}

// Endpoint implements QueryBuilder.
func (b *UserSearch) Endpoint() string { return resource.Users.Endpoint() }

// BuildQuery implements QueryBuilder.
func (b *UserSearch) BuildQuery() (string, error) {
	if err := b.checkDropped(b.client.strict); err != nil {
		return "", err
	}
	return query.Standard(&b.keywords, &b.qualifiers, &b.sortOrder).Encode(), nil
}

// Search performs the request.
func (b *UserSearch) Search(ctx context.Context, opts ...SearchOption) (*Response, error) {
	return b.client.execute(ctx, resource.Users, b, b.newDrops(), opts)
}

// ByType is "user" or "org".
func (b *UserSearch) ByType(accountType string) *UserSearch { return b.is("type", accountType) }

// Repos filters on the number of owned repositories.
func (b *UserSearch) Repos(n int, op Operator) *UserSearch { return b.count("repos", n, op) }

// ReposRange limits the repository count to a span (repos:FROM..TO).
func (b *UserSearch) ReposRange(first, second int) *UserSearch {
	return b.countRange("repos", first, second)
}

// ByLocation matches the profile location (location:PLACE).
func (b *UserSearch) ByLocation(location string) *UserSearch { return b.is("location", location) }

// ByLanguage matches the language of owned repositories (language:LANG).
func (b *UserSearch) ByLanguage(language string) *UserSearch { return b.is("language", language) }

// Created filters on the account creation date (created:OP DATE).
func (b *UserSearch) Created(date string, op Operator) *UserSearch {
	return b.date("created", date, op)
}

// CreatedRange limits the creation date to a span (created:FROM..TO).
func (b *UserSearch) CreatedRange(first, second string) *UserSearch {
	return b.dateRange("created", first, second)
}

// Followers filters on the follower count (followers:OP N).
func (b *UserSearch) Followers(n int, op Operator) *UserSearch {
	return b.count("followers", n, op)
}

// FollowersRange limits followers to a span (followers:FROM..TO).
func (b *UserSearch) FollowersRange(first, second int) *UserSearch {
	return b.countRange("followers", first, second)
}
