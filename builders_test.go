package ghsearch

import (
	"go/ast"
	"go/parser"
	"go/token"
	"net/url"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func qualifiersOf(t *testing.T, qb QueryBuilder) string {
	t.Helper()
	raw, err := qb.BuildQuery()
	if err != nil {
		t.Fatalf("BuildQuery: %v", err)
	}
	vals, err := url.ParseQuery(raw)
	if err != nil {
		t.Fatalf("ParseQuery(%q): %v", raw, err)
	}
	return vals.Get("q")
}

func TestCodeSearch_Vocabulary(t *testing.T) {
	c, _ := newTestClient(t)

	tests := []struct {
		name string
		b    *CodeSearch
		want string
	}{
		{"in file", c.Code().InFiles(), "in:file"},
		{"in path", c.Code().InPaths(), "in:path"},
		{"in both", c.Code().InFilesAndPaths(), "in:file,path"},
		{"user", c.Code().ByUser("defunkt"), "user:defunkt"},
		{"org", c.Code().ByOrganization("github"), "org:github"},
		{"repo", c.Code().ByRepository("mozilla", "shumway"), "repo:mozilla/shumway"},
		{"path", c.Code().ByPath("cgi-bin"), "path:cgi-bin"},
		{"language", c.Code().ByLanguage("xml"), "language:xml"},
		{"size", c.Code().BySize(1000, GreaterThan), ">:size1000"},
		{"size range", c.Code().BySizeRange(2000, 1000), "size:1000..2000"},
		{"filename", c.Code().ByFilename("linguist"), "filename:linguist"},
		{"extension", c.Code().ByExtension("coffee"), "extension:coffee"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := qualifiersOf(t, tc.b); got != tc.want {
				t.Errorf("q = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCommitSearch_Vocabulary(t *testing.T) {
	c, _ := newTestClient(t)

	b := c.Commits().
		ByAuthor("defunkt").
		ByCommitter("mojombo").
		AuthorNameContains("wanstrath").
		CommitterNameContains("preston").
		ByAuthorEmail("chris@github.com").
		ByCommitterEmail("tom@github.com").
		AuthorDate("2016-01-01", LessOrEqual).
		AuthorDateRange("2016-02-01", "2016-01-01").
		CommitterDate("2016-01-01", GreaterThan).
		CommitterDateRange("2016-01-01", "2016-02-01").
		OnlyMergeCommits().
		OnlyNonMergeCommits().
		ByHash("124a9a0ee1d8f1e15e833aff432fbb3b02632105").
		ByParent("124a9a0").
		ByTree("99ca967").
		ByUser("octocat").
		InOrganization("github").
		InRepository("octocat", "hello-world").
		OnlyPublic().
		OnlyPrivate()

	want := []string{
		"author:defunkt",
		"committer:mojombo",
		"author-name:wanstrath",
		"committer-name:preston",
		"author-email:chris@github.com",
		"committer-email:tom@github.com",
		"<=:author-date2016-01-01",
		"author-date:2016-01-01..2016-02-01",
		">:committer-date2016-01-01",
		"committer-date:2016-01-01..2016-02-01",
		"merge:true",
		"merge:false",
		"hash:124a9a0ee1d8f1e15e833aff432fbb3b02632105",
		"parent:124a9a0",
		"tree:99ca967",
		"user:octocat",
		"org:github",
		"repo:octocat/hello-world",
		"is:public",
		"is:private",
	}
	if got := b.Qualifiers(); !reflect.DeepEqual(got, want) {
		t.Errorf("qualifiers =\n%v\nwant\n%v", got, want)
	}
}

func TestIssueSearch_Vocabulary(t *testing.T) {
	c, _ := newTestClient(t)

	tests := []struct {
		name string
		b    *IssueSearch
		want string
	}{
		{"issues", c.Issues().OnlyIssues(), "type:issue"},
		{"prs", c.Issues().OnlyPullRequests(), "type:pr"},
		{"title", c.Issues().InTitle(), "in:title"},
		{"body", c.Issues().InBody(), "in:body"},
		{"comments", c.Issues().InComments(), "in:comments"},
		{"user", c.Issues().ByUser("defunkt"), "user:defunkt"},
		{"org", c.Issues().InOrganization("github"), "org:github"},
		{"repo", c.Issues().InRepository("rails", "rails"), "repo:rails/rails"},
		{"open", c.Issues().OnlyOpen(), "state:open"},
		{"closed", c.Issues().OnlyClosed(), "state:closed"},
		{"public", c.Issues().OnlyPublic(), "is:public"},
		{"private", c.Issues().OnlyPrivate(), "is:private"},
		{"author", c.Issues().ByAuthor("cheshire137"), "author:cheshire137"},
		{"app", c.Issues().ByApp("robot"), "author:app/robot"},
		{"assignee", c.Issues().ByAssignee("vmg"), "assignee:vmg"},
		{"mention", c.Issues().ByMention("defunkt"), "mentions:defunkt"},
		{"team", c.Issues().ByTeamMention("jekyll", "owners"), "team:jekyll/owners"},
		{"commenter", c.Issues().ByCommenter("defunkt"), "commenter:defunkt"},
		{"involves", c.Issues().ByInvolved("jlord"), "involves:jlord"},
		{"label", c.Issues().ByLabel("bug"), "label:bug"},
		{"milestone", c.Issues().ByMilestone("overhaul"), "milestone:overhaul"},
		{"project owner", c.Issues().ByProjectBoard("1", "github", ""), "project:github/1"},
		{"project repo", c.Issues().ByProjectBoard("1", "github", "linguist"), "project:github/linguist/1"},
		{"pending", c.Issues().OnlyPendingCommits(), "status:pending"},
		{"success", c.Issues().OnlySuccessCommits(), "status:success"},
		{"failure", c.Issues().OnlyFailureCommits(), "status:failure"},
		{"sha", c.Issues().ByCommitSHA("e1109ab"), "SHA:e1109ab"},
		{"head", c.Issues().ByHead("change"), "head:change"},
		{"base", c.Issues().ByBase("gh-pages"), "base:gh-pages"},
		{"language", c.Issues().ByLanguage("ruby"), "language:ruby"},
		{"interactions", c.Issues().ByInteractions(2000, GreaterThan), ">:interactions2000"},
		{"interactions range", c.Issues().ByInteractionsRange(1000, 500), "interactions:500..1000"},
		{"reactions", c.Issues().ByReactions(500, GreaterOrEqual), ">=:reactions500"},
		{"reactions range", c.Issues().ByReactionsRange(1, 10), "reactions:1..10"},
		{"drafts", c.Issues().OnlyDrafts(), "draft:true"},
		{"no drafts", c.Issues().WithoutDrafts(), "draft:false"},
		{"not reviewed", c.Issues().NotReviewed(), "review:none"},
		{"review required", c.Issues().ReviewRequired(), "review:required"},
		{"approved", c.Issues().Approved(), "review:approved"},
		{"changes requested", c.Issues().ChangesRequested(), "review:changes_requested"},
		{"reviewed by", c.Issues().ReviewedBy("gjtorikian"), "reviewed-by:gjtorikian"},
		{"review requested", c.Issues().ReviewRequestedFrom("benbalter"), "review-requested:benbalter"},
		{"team review", c.Issues().TeamReviewRequested("atom/design"), "team-review-requested:atom/design"},
		{"created", c.Issues().Created("2017-01-01", LessThan), "<:created2017-01-01"},
		{"created range", c.Issues().CreatedRange("2017-02-01", "2017-01-01"), "created:2017-01-01..2017-02-01"},
		{"updated", c.Issues().Updated("2017-01-01", GreaterOrEqual), ">=:updated2017-01-01"},
		{"updated range", c.Issues().UpdatedRange("2017-01-01", "2017-03-01"), "updated:2017-01-01..2017-03-01"},
		{"closed date", c.Issues().Closed("2014-06-11", GreaterThan), ">:closed2014-06-11"},
		{"closed range", c.Issues().ClosedRange("2014-06-11", "2014-06-01"), "closed:2014-06-01..2014-06-11"},
		{"merged date", c.Issues().Merged("2011-01-01", LessOrEqual), "<=:merged2011-01-01"},
		{"merged range", c.Issues().MergedRange("2011-01-01", "2011-02-01"), "merged:2011-01-01..2011-02-01"},
		{"merged", c.Issues().OnlyMerged(), "is:merged"},
		{"unmerged", c.Issues().OnlyUnmerged(), "is:unmerged"},
		{"archived", c.Issues().OnlyArchived(), "archived:true"},
		{"non archived", c.Issues().OnlyNonArchived(), "archived:false"},
		{"locked", c.Issues().OnlyLocked(), "is:locked"},
		{"unlocked", c.Issues().OnlyUnlocked(), "is:unlocked"},
		{"no label", c.Issues().WithoutLabels(), "no:label"},
		{"no milestone", c.Issues().WithoutMilestone(), "no:milestone"},
		{"no assignee", c.Issues().WithoutAssignee(), "no:assignee"},
		{"no project", c.Issues().WithoutProject(), "no:project"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := qualifiersOf(t, tc.b); got != tc.want {
				t.Errorf("q = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRepositorySearch_Vocabulary(t *testing.T) {
	c, _ := newTestClient(t)

	tests := []struct {
		name string
		b    *RepositorySearch
		want string
	}{
		{"name", c.Repositories().InName(), "in:name"},
		{"description", c.Repositories().InDescription(), "in:description"},
		{"readme", c.Repositories().InReadme(), "in:readme"},
		{"user", c.Repositories().ByUser("defunkt"), "user:defunkt"},
		{"org", c.Repositories().InOrganization("github"), "org:github"},
		{"size", c.Repositories().Size(1000, GreaterOrEqual), ">=:size1000"},
		{"size range", c.Repositories().SizeRange(3000, 1000), "size:1000..3000"},
		{"followers", c.Repositories().Followers(10000, GreaterOrEqual), ">=:followers10000"},
		{"followers range", c.Repositories().FollowersRange(1, 10), "followers:1..10"},
		{"stars", c.Repositories().Stars(500, GreaterThan), ">:stars500"},
		{"stars range", c.Repositories().StarsRange(100, 10), "stars:10..100"},
		{"created", c.Repositories().Created("2011-01-01", LessThan), "<:created2011-01-01"},
		{"created range", c.Repositories().CreatedRange("2012-01-01", "2011-01-01"), "created:2011-01-01..2012-01-01"},
		{"pushed", c.Repositories().Pushed("2013-07-01", GreaterThan), ">:pushed2013-07-01"},
		{"pushed range", c.Repositories().PushedRange("2013-07-01", "2013-08-01"), "pushed:2013-07-01..2013-08-01"},
		{"language", c.Repositories().ByLanguage("rust"), "language:rust"},
		{"topic", c.Repositories().ByTopic("jekyll"), "topic:jekyll"},
		{"topics", c.Repositories().Topics(5, GreaterThan), ">:topics5"},
		{"topics range", c.Repositories().TopicsRange(2, 1), "topics:1..2"},
		{"license", c.Repositories().ByLicense("apache-2.0"), "license:apache-2.0"},
		{"public", c.Repositories().OnlyPublic(), "is:public"},
		{"private", c.Repositories().OnlyPrivate(), "is:private"},
		{"mirrors", c.Repositories().OnlyMirrors(), "mirror:true"},
		{"non mirrors", c.Repositories().OnlyNonMirrors(), "mirror:false"},
		{"archived", c.Repositories().OnlyArchived(), "archived:true"},
		{"non archived", c.Repositories().OnlyNonArchived(), "archived:false"},
		{"good first", c.Repositories().GoodFirstIssues(2, GreaterThan), ">:good-first-issues2"},
		{"good first range", c.Repositories().GoodFirstIssuesRange(5, 1), "good-first-issues:1..5"},
		{"help wanted", c.Repositories().HelpWantedIssues(4, GreaterThan), ">:help-wanted-issues4"},
		{"help wanted range", c.Repositories().HelpWantedIssuesRange(1, 9), "help-wanted-issues:1..9"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := qualifiersOf(t, tc.b); got != tc.want {
				t.Errorf("q = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestUserSearch_Vocabulary(t *testing.T) {
	c, _ := newTestClient(t)

	b := c.Users().
		AddKeyword("tom").
		ByType("user").
		Repos(42, GreaterThan).
		ReposRange(100, 10).
		ByLocation("iceland").
		ByLanguage("javascript").
		Created("2011-01-01", LessThan).
		CreatedRange("2012-01-01", "2011-01-01").
		Followers(1000, GreaterOrEqual).
		FollowersRange(1, 10)

	want := "tom+type:user+>:repos42+repos:10..100+location:iceland+language:javascript+" +
		"<:created2011-01-01+created:2011-01-01..2012-01-01+>=:followers1000+followers:1..10"
	if got := qualifiersOf(t, b); got != want {
		t.Errorf("q =\n%q\nwant\n%q", got, want)
	}
}

func TestKeywordsBeforeQualifiers(t *testing.T) {
	c, _ := newTestClient(t)

	b := c.Code().ByLanguage("go").AddKeyword("a").AddKeywords("b", "a")
	if got := qualifiersOf(t, b); got != "a+b+a+language:go" {
		t.Errorf("q = %q", got)
	}
	if got := b.Keywords(); !reflect.DeepEqual(got, []string{"a", "b", "a"}) {
		t.Errorf("keywords = %v", got)
	}
}

func TestGenericQualifierMethods(t *testing.T) {
	c, _ := newTestClient(t)

	b := c.Issues().
		AddStringQualifier("label", "wontfix", true).
		AddSingleRangeQualifier("comments", "10", GreaterThan).
		AddRangeQualifier("created", "2020-02-01", "2020-01-01").
		AddCountRangeQualifier("comments", 100, 9)

	want := []string{"-label:wontfix", ">:comments10", "created:2020-01-01..2020-02-01", "comments:9..100"}
	if got := b.Qualifiers(); !reflect.DeepEqual(got, want) {
		t.Errorf("qualifiers = %v, want %v", got, want)
	}
}

func TestSortOrder(t *testing.T) {
	c, _ := newTestClient(t)

	b := c.Issues()
	if b.Sort() != "score" || b.Order() != "desc" {
		t.Errorf("defaults = %q/%q", b.Sort(), b.Order())
	}
	b.SetSort("comments").SetOrder("asc")

	raw, err := b.BuildQuery()
	if err != nil {
		t.Fatal(err)
	}
	if raw != "q=&sort=comments&order=asc" {
		t.Errorf("query = %q", raw)
	}
}

// parsePackage parses the non-test sources of this package with comments.
func parsePackage(t *testing.T) []*ast.File {
	t.Helper()
	paths, err := filepath.Glob("*.go")
	if err != nil {
		t.Fatal(err)
	}
	fset := token.NewFileSet()
	var files []*ast.File
	for _, p := range paths {
		if strings.HasSuffix(p, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, p, nil, parser.ParseComments)
		if err != nil {
			t.Fatalf("parse %s: %v", p, err)
		}
		files = append(files, f)
	}
	return files
}

func TestExportedMethodsDocumented(t *testing.T) {
	for _, f := range parsePackage(t) {
		for _, decl := range f.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || !fn.Name.IsExported() {
				continue
			}
			if fn.Doc == nil || !strings.HasPrefix(fn.Doc.Text(), fn.Name.Name+" ") {
				t.Errorf("%s lacks a godoc starting with its name", fn.Name.Name)
			}
		}
	}
}

func TestBuilderDocsNameConstructor(t *testing.T) {
	ctors := map[string]string{
		"CodeSearch":       "Client.Code",
		"CommitSearch":     "Client.Commits",
		"IssueSearch":      "Client.Issues",
		"LabelSearch":      "Client.Labels",
		"RepositorySearch": "Client.Repositories",
		"TopicSearch":      "Client.Topics",
		"UserSearch":       "Client.Users",
	}
	seen := map[string]bool{}
	for _, f := range parsePackage(t) {
		for _, decl := range f.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)
				ctor, ok := ctors[ts.Name.Name]
				if !ok {
					continue
				}
				seen[ts.Name.Name] = true
				doc := gd.Doc.Text()
				if !strings.Contains(doc, ctor) || !strings.Contains(doc, "zero value is not usable") {
					t.Errorf("%s doc %q should point at %s and warn about the zero value", ts.Name.Name, doc, ctor)
				}
			}
		}
	}
	if len(seen) != len(ctors) {
		t.Errorf("found %d builder types, want %d", len(seen), len(ctors))
	}
}
