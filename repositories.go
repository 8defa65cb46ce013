package ghsearch

import (
	"context"

	"github.com/kailas-cloud/ghsearch/internal/domain/query"
	"github.com/kailas-cloud/ghsearch/internal/domain/resource"
)

// RepositorySearch builds a search over repositories.
// Obtain one from Client.Repositories; the zero value is not usable.
type RepositorySearch struct {
	keywordPart[*RepositorySearch]
	qualifierPart[*RepositorySearch]
	sortPart[*RepositorySearch]
	client *Client
}

var _ QueryBuilder = (*RepositorySearch)(nil)

func newRepositorySearch(c *Client) *RepositorySearch {
	b := &RepositorySearch{client: c}
	b.keywordPart.self = b
	b.qualifierPart.self = b
	b.sortPart.self = b
	return b
}

// Endpoint implements QueryBuilder.
func (b *RepositorySearch) Endpoint() string { return resource.Repositories.Endpoint() }

// BuildQuery implements QueryBuilder.
func (b *RepositorySearch) BuildQuery() (string, error) {
	if err := b.checkDropped(b.client.strict); err != nil {
		return "", err
	}
	return query.Standard(&b.keywords, &b.qualifiers, &b.sortOrder).Encode(), nil
}

// Search performs the request.
func (b *RepositorySearch) Search(ctx context.Context, opts ...SearchOption) (*Response, error) {
	return b.client.execute(ctx, resource.Repositories, b, b.newDrops(), opts)
}

// InName matches keywords in the repository name (in:name).
func (b *RepositorySearch) InName() *RepositorySearch { return b.is("in", "name") }

// InDescription matches keywords in the description (in:description).
func (b *RepositorySearch) InDescription() *RepositorySearch { return b.is("in", "description") }

// InReadme matches keywords in the README (in:readme).
func (b *RepositorySearch) InReadme() *RepositorySearch { return b.is("in", "readme") }

// ByUser limits to repositories owned by a user (user:USERNAME).
func (b *RepositorySearch) ByUser(username string) *RepositorySearch {
	return b.is("user", username)
}

// InOrganization limits to repositories of an organization (org:ORG).
func (b *RepositorySearch) InOrganization(org string) *RepositorySearch { return b.is("org", org) }

// Size filters on repository size in kilobytes.
func (b *RepositorySearch) Size(kb int, op Operator) *RepositorySearch {
	return b.count("size", kb, op)
}

// SizeRange limits the size in kilobytes to a span (size:FROM..TO).
func (b *RepositorySearch) SizeRange(first, second int) *RepositorySearch {
	return b.countRange("size", first, second)
}

// Followers filters on the follower count (followers:OP N).
func (b *RepositorySearch) Followers(n int, op Operator) *RepositorySearch {
	return b.count("followers", n, op)
}

// FollowersRange limits followers to a span (followers:FROM..TO).
func (b *RepositorySearch) FollowersRange(first, second int) *RepositorySearch {
	return b.countRange("followers", first, second)
}

// Stars filters on the stargazer count (stars:OP N).
func (b *RepositorySearch) Stars(n int, op Operator) *RepositorySearch {
	return b.count("stars", n, op)
}

// StarsRange limits stars to a span (stars:FROM..TO).
func (b *RepositorySearch) StarsRange(first, second int) *RepositorySearch {
	return b.countRange("stars", first, second)
}

// Created filters on the creation date (created:OP DATE).
func (b *RepositorySearch) Created(date string, op Operator) *RepositorySearch {
	return b.date("created", date, op)
}

// CreatedRange limits the creation date to a span (created:FROM..TO).
func (b *RepositorySearch) CreatedRange(first, second string) *RepositorySearch {
	return b.dateRange("created", first, second)
}

// Pushed filters on the last push date (pushed:OP DATE).
func (b *RepositorySearch) Pushed(date string, op Operator) *RepositorySearch {
	return b.date("pushed", date, op)
}

// PushedRange limits the push date to a span (pushed:FROM..TO).
func (b *RepositorySearch) PushedRange(first, second string) *RepositorySearch {
	return b.dateRange("pushed", first, second)
}

// ByLanguage matches the primary language (language:LANG).
func (b *RepositorySearch) ByLanguage(language string) *RepositorySearch {
	return b.is("language", language)
}

// ByTopic matches a topic (topic:NAME).
func (b *RepositorySearch) ByTopic(topic string) *RepositorySearch { return b.is("topic", topic) }

// Topics filters on the number of topics attached to a repository.
func (b *RepositorySearch) Topics(n int, op Operator) *RepositorySearch {
	return b.count("topics", n, op)
}

// TopicsRange limits the topic count to a span (topics:FROM..TO).
func (b *RepositorySearch) TopicsRange(first, second int) *RepositorySearch {
	return b.countRange("topics", first, second)
}

// ByLicense matches a license keyword such as apache-2.0 (license:KEYWORD).
func (b *RepositorySearch) ByLicense(license string) *RepositorySearch {
	return b.is("license", license)
}

// OnlyPublic keeps public repositories (is:public).
func (b *RepositorySearch) OnlyPublic() *RepositorySearch { return b.is("is", "public") }

// OnlyPrivate keeps private repositories (is:private).
func (b *RepositorySearch) OnlyPrivate() *RepositorySearch { return b.is("is", "private") }

// OnlyMirrors keeps mirrors (mirror:true).
func (b *RepositorySearch) OnlyMirrors() *RepositorySearch { return b.is("mirror", "true") }

// OnlyNonMirrors drops mirrors (mirror:false).
func (b *RepositorySearch) OnlyNonMirrors() *RepositorySearch { return b.is("mirror", "false") }

// OnlyArchived keeps archived repositories (archived:true).
func (b *RepositorySearch) OnlyArchived() *RepositorySearch { return b.is("archived", "true") }

// OnlyNonArchived drops archived repositories (archived:false).
func (b *RepositorySearch) OnlyNonArchived() *RepositorySearch { return b.is("archived", "false") }

// GoodFirstIssues filters on open good-first-issue counts (good-first-issues:OP N).
func (b *RepositorySearch) GoodFirstIssues(n int, op Operator) *RepositorySearch {
	return b.count("good-first-issues", n, op)
}

// GoodFirstIssuesRange limits good first issues to a span (good-first-issues:FROM..TO).
func (b *RepositorySearch) GoodFirstIssuesRange(first, second int) *RepositorySearch {
	return b.countRange("good-first-issues", first, second)
}

// HelpWantedIssues filters on open help-wanted counts (help-wanted-issues:OP N).
func (b *RepositorySearch) HelpWantedIssues(n int, op Operator) *RepositorySearch {
	return b.count("help-wanted-issues", n, op)
}

// HelpWantedIssuesRange limits help-wanted issues to a span (help-wanted-issues:FROM..TO).
func (b *RepositorySearch) HelpWantedIssuesRange(first, second int) *RepositorySearch {
	return b.countRange("help-wanted-issues", first, second)
}
