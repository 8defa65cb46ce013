package ghsearch

import (
	"context"

	"github.com/kailas-cloud/ghsearch/internal/domain/qualifier"
	"github.com/kailas-cloud/ghsearch/internal/domain/query"
	"github.com/kailas-cloud/ghsearch/internal/domain/resource"
)

// IssueSearch builds a search over issues and pull requests.
// Obtain one from Client.Issues; the zero value is not usable.
type IssueSearch struct {
	keywordPart[*IssueSearch]
	qualifierPart[*IssueSearch]
	sortPart[*IssueSearch]
	client *Client
}

var _ QueryBuilder = (*IssueSearch)(nil)

func newIssueSearch(c *Client) *IssueSearch {
	b := &IssueSearch{client: c}
	b.keywordPart.self = b
	b.qualifierPart.self = b
	b.sortPart.self = b
	return b
}

// Endpoint implements QueryBuilder.
func (b *IssueSearch) Endpoint() string { return resource.Issues.Endpoint() }

// BuildQuery implements QueryBuilder.
func (b *IssueSearch) BuildQuery() (string, error) {
	if err := b.checkDropped(b.client.strict); err != nil {
		return "", err
	}
	return query.Standard(&b.keywords, &b.qualifiers, &b.sortOrder).Encode(), nil
}

// Search performs the request.
func (b *IssueSearch) Search(ctx context.Context, opts ...SearchOption) (*Response, error) {
	return b.client.execute(ctx, resource.Issues, b, b.newDrops(), opts)
}

// Type and scope.

// OnlyIssues keeps issues (type:issue).
func (b *IssueSearch) OnlyIssues() *IssueSearch { return b.is("type", "issue") }

// OnlyPullRequests keeps pull requests (type:pr).
func (b *IssueSearch) OnlyPullRequests() *IssueSearch { return b.is("type", "pr") }

// InTitle matches keywords in the title (in:title).
func (b *IssueSearch) InTitle() *IssueSearch { return b.is("in", "title") }

// InBody matches keywords in the body (in:body).
func (b *IssueSearch) InBody() *IssueSearch { return b.is("in", "body") }

// InComments matches keywords in comments (in:comments).
func (b *IssueSearch) InComments() *IssueSearch { return b.is("in", "comments") }

// ByUser limits to repositories owned by a user (user:USERNAME).
func (b *IssueSearch) ByUser(username string) *IssueSearch { return b.is("user", username) }

// InOrganization limits to repositories of an organization (org:ORG).
func (b *IssueSearch) InOrganization(org string) *IssueSearch { return b.is("org", org) }

// InRepository limits to a single repository (repo:OWNER/REPO).
func (b *IssueSearch) InRepository(owner, repo string) *IssueSearch {
	return b.is("repo", qualifier.Path(owner, repo))
}

// State and visibility.

// OnlyOpen keeps open items (state:open).
func (b *IssueSearch) OnlyOpen() *IssueSearch { return b.is("state", "open") }

// OnlyClosed keeps closed items (state:closed).
func (b *IssueSearch) OnlyClosed() *IssueSearch { return b.is("state", "closed") }

// OnlyPublic keeps public repositories (is:public).
func (b *IssueSearch) OnlyPublic() *IssueSearch { return b.is("is", "public") }

// OnlyPrivate keeps private repositories (is:private).
func (b *IssueSearch) OnlyPrivate() *IssueSearch { return b.is("is", "private") }

// People.

// ByAuthor matches items opened by a user (author:USERNAME).
func (b *IssueSearch) ByAuthor(username string) *IssueSearch { return b.is("author", username) }

// ByApp matches items opened by a GitHub App (author:app/name).
func (b *IssueSearch) ByApp(app string) *IssueSearch { return b.ByAuthor("app/" + app) }

// ByAssignee matches items assigned to a user (assignee:USERNAME).
func (b *IssueSearch) ByAssignee(username string) *IssueSearch { return b.is("assignee", username) }

// ByMention matches items mentioning a user (mentions:USERNAME).
func (b *IssueSearch) ByMention(username string) *IssueSearch { return b.is("mentions", username) }

// ByTeamMention matches items mentioning org/team.
func (b *IssueSearch) ByTeamMention(org, team string) *IssueSearch {
	return b.is("team", qualifier.Path(org, team))
}

// ByCommenter matches items a user commented on (commenter:USERNAME).
func (b *IssueSearch) ByCommenter(username string) *IssueSearch {
	return b.is("commenter", username)
}

// ByInvolved matches any involvement of a user (involves:USERNAME).
func (b *IssueSearch) ByInvolved(username string) *IssueSearch { return b.is("involves", username) }

// Labels, milestones, projects.

// ByLabel matches a label; repeat for AND (label:NAME).
func (b *IssueSearch) ByLabel(label string) *IssueSearch { return b.is("label", label) }

// ByMilestone matches a milestone (milestone:NAME).
func (b *IssueSearch) ByMilestone(milestone string) *IssueSearch {
	return b.is("milestone", milestone)
}

// ByProjectBoard matches a project board. With an empty repo the board is
// owner-level (project:owner/board), otherwise repository-level
// (project:owner/repo/board).
func (b *IssueSearch) ByProjectBoard(board, owner, repo string) *IssueSearch {
	if repo == "" {
		return b.is("project", qualifier.Path(owner, board))
	}
	return b.is("project", qualifier.Path(owner, repo, board))
}

// Commit status and branches.

// OnlyPendingCommits keeps pull requests with pending status (status:pending).
func (b *IssueSearch) OnlyPendingCommits() *IssueSearch { return b.is("status", "pending") }

// OnlySuccessCommits keeps pull requests with passing status (status:success).
func (b *IssueSearch) OnlySuccessCommits() *IssueSearch { return b.is("status", "success") }

// OnlyFailureCommits keeps pull requests with failing status (status:failure).
func (b *IssueSearch) OnlyFailureCommits() *IssueSearch { return b.is("status", "failure") }

// ByCommitSHA matches pull requests containing a commit (SHA:SHA).
func (b *IssueSearch) ByCommitSHA(sha string) *IssueSearch { return b.is("SHA", sha) }

// ByHead matches the source branch (head:BRANCH).
func (b *IssueSearch) ByHead(branch string) *IssueSearch { return b.is("head", branch) }

// ByBase matches the target branch (base:BRANCH).
func (b *IssueSearch) ByBase(branch string) *IssueSearch { return b.is("base", branch) }

// ByLanguage matches the repository language (language:LANG).
func (b *IssueSearch) ByLanguage(language string) *IssueSearch { return b.is("language", language) }

// Engagement counts.

// ByInteractions filters on reactions plus comments (interactions:OP N).
func (b *IssueSearch) ByInteractions(n int, op Operator) *IssueSearch {
	return b.count("interactions", n, op)
}

// ByInteractionsRange limits interactions to a span (interactions:FROM..TO).
func (b *IssueSearch) ByInteractionsRange(first, second int) *IssueSearch {
	return b.countRange("interactions", first, second)
}

// ByReactions filters on the reaction count (reactions:OP N).
func (b *IssueSearch) ByReactions(n int, op Operator) *IssueSearch {
	return b.count("reactions", n, op)
}

// ByReactionsRange limits reactions to a span (reactions:FROM..TO).
func (b *IssueSearch) ByReactionsRange(first, second int) *IssueSearch {
	return b.countRange("reactions", first, second)
}

// Drafts and reviews.

// OnlyDrafts keeps draft pull requests (draft:true).
func (b *IssueSearch) OnlyDrafts() *IssueSearch { return b.is("draft", "true") }

// WithoutDrafts drops draft pull requests (draft:false).
func (b *IssueSearch) WithoutDrafts() *IssueSearch { return b.is("draft", "false") }

// NotReviewed keeps unreviewed pull requests (review:none).
func (b *IssueSearch) NotReviewed() *IssueSearch { return b.is("review", "none") }

// ReviewRequired keeps pull requests awaiting a required review (review:required).
func (b *IssueSearch) ReviewRequired() *IssueSearch { return b.is("review", "required") }

// Approved keeps approved pull requests (review:approved).
func (b *IssueSearch) Approved() *IssueSearch { return b.is("review", "approved") }

// ChangesRequested keeps pull requests with requested changes (review:changes_requested).
func (b *IssueSearch) ChangesRequested() *IssueSearch { return b.is("review", "changes_requested") }

// ReviewedBy matches pull requests reviewed by a user (reviewed-by:USERNAME).
func (b *IssueSearch) ReviewedBy(username string) *IssueSearch {
	return b.is("reviewed-by", username)
}

// ReviewRequestedFrom matches pending review requests for a user (review-requested:USERNAME).
func (b *IssueSearch) ReviewRequestedFrom(username string) *IssueSearch {
	return b.is("review-requested", username)
}

// TeamReviewRequested matches pending review requests for a team (team-review-requested:TEAM).
func (b *IssueSearch) TeamReviewRequested(team string) *IssueSearch {
	return b.is("team-review-requested", team)
}

// Dates. Values are YYYY-MM-DD or ISO 8601 timestamps.

// Created filters on the creation date (created:OP DATE).
func (b *IssueSearch) Created(date string, op Operator) *IssueSearch {
	return b.date("created", date, op)
}

// CreatedRange limits the creation date to a span (created:FROM..TO).
func (b *IssueSearch) CreatedRange(first, second string) *IssueSearch {
	return b.dateRange("created", first, second)
}

// Updated filters on the last update date (updated:OP DATE).
func (b *IssueSearch) Updated(date string, op Operator) *IssueSearch {
	return b.date("updated", date, op)
}

// UpdatedRange limits the update date to a span (updated:FROM..TO).
func (b *IssueSearch) UpdatedRange(first, second string) *IssueSearch {
	return b.dateRange("updated", first, second)
}

// Closed filters on the close date (closed:OP DATE).
func (b *IssueSearch) Closed(date string, op Operator) *IssueSearch {
	return b.date("closed", date, op)
}

// ClosedRange limits the close date to a span (closed:FROM..TO).
func (b *IssueSearch) ClosedRange(first, second string) *IssueSearch {
	return b.dateRange("closed", first, second)
}

// Merged filters on the merge date (merged:OP DATE).
func (b *IssueSearch) Merged(date string, op Operator) *IssueSearch {
	return b.date("merged", date, op)
}

// MergedRange limits the merge date to a span (merged:FROM..TO).
func (b *IssueSearch) MergedRange(first, second string) *IssueSearch {
	return b.dateRange("merged", first, second)
}

// Flags.

// OnlyMerged keeps merged pull requests (is:merged).
func (b *IssueSearch) OnlyMerged() *IssueSearch { return b.is("is", "merged") }

// OnlyUnmerged keeps unmerged pull requests (is:unmerged).
func (b *IssueSearch) OnlyUnmerged() *IssueSearch { return b.is("is", "unmerged") }

// OnlyArchived keeps items in archived repositories (archived:true).
func (b *IssueSearch) OnlyArchived() *IssueSearch { return b.is("archived", "true") }

// OnlyNonArchived drops items in archived repositories (archived:false).
func (b *IssueSearch) OnlyNonArchived() *IssueSearch { return b.is("archived", "false") }

// OnlyLocked keeps locked conversations (is:locked).
func (b *IssueSearch) OnlyLocked() *IssueSearch { return b.is("is", "locked") }

// OnlyUnlocked keeps unlocked conversations (is:unlocked).
func (b *IssueSearch) OnlyUnlocked() *IssueSearch { return b.is("is", "unlocked") }

// Missing metadata.

// WithoutLabels keeps unlabeled items (no:label).
func (b *IssueSearch) WithoutLabels() *IssueSearch { return b.is("no", "label") }

// WithoutMilestone keeps items without a milestone (no:milestone).
func (b *IssueSearch) WithoutMilestone() *IssueSearch { return b.is("no", "milestone") }

// WithoutAssignee keeps unassigned items (no:assignee).
func (b *IssueSearch) WithoutAssignee() *IssueSearch { return b.is("no", "assignee") }

// WithoutProject keeps items outside any project (no:project).
func (b *IssueSearch) WithoutProject() *IssueSearch { return b.is("no", "project") }
