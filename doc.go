// Package ghsearch is a fluent query builder for the GitHub search API.
//
// A Client hands out one builder per resource type. Filter methods append
// qualifier tokens and return the builder, so calls chain; Search assembles
// the query string and performs a single GET, returning the raw response.
//
//	client, _ := ghsearch.New(ghsearch.WithToken(os.Getenv("GITHUB_TOKEN")))
//	resp, err := client.Issues().
//	    OnlyPullRequests().
//	    OnlyOpen().
//	    ByLabel("bug").
//	    Search(ctx)
//
// Qualifiers are written in the search mini-language:
//
//	name:value     plain match           (ByLabel("bug") -> label:bug)
//	-name:value    negated match         (AddStringQualifier("label", "bug", true))
//	op:namevalue   one-sided range       (Stars(100, ghsearch.GreaterThan) -> >:stars100)
//	name:min..max  two-sided range       (StarsRange(500, 10) -> stars:10..500)
//
// A single-range qualifier with an unrecognized operator is skipped. The skip
// is counted (DroppedQualifiers) and logged; WithStrictOperators turns it into
// ErrInvalidOperator.
//
// Builders are not safe for concurrent use. Build one per search.
// The Client is safe to share.
package ghsearch
