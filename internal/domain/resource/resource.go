// Package resource enumerates the searchable resource types and their endpoints.
package resource

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/ghsearch/internal/domain"
)

// Kind is a searchable resource type.
type Kind string

// Supported resource types.
const (
	Code         Kind = "code"
	Commits      Kind = "commits"
	Issues       Kind = "issues"
	Labels       Kind = "labels"
	Repositories Kind = "repositories"
	Topics       Kind = "topics"
	Users        Kind = "users"
)

// Endpoint paths, kept literally as the search API clients have always sent them.
// Some lack a leading slash. The client joins base URL and endpoint with exactly
// one slash, so "https://api.github.com/" + "search/users" and
// "https://api.github.com" + "/search/code" both resolve correctly.
const (
	EndpointCode         = "/search/code"
	EndpointCommits      = "search/commit"
	EndpointIssues       = "search/issues"
	EndpointLabels       = "/search/labels"
	EndpointRepositories = "/search/repositories"
	EndpointTopics       = "/search/topics"
	EndpointUsers        = "search/users"
)

var endpoints = map[Kind]string{
	Code:         EndpointCode,
	Commits:      EndpointCommits,
	Issues:       EndpointIssues,
	Labels:       EndpointLabels,
	Repositories: EndpointRepositories,
	Topics:       EndpointTopics,
	Users:        EndpointUsers,
}

// aliases accepted by Parse besides the canonical names.
var aliases = map[string]Kind{
	"commit":     Commits,
	"issue":      Issues,
	"pulls":      Issues,
	"prs":        Issues,
	"label":      Labels,
	"repos":      Repositories,
	"repo":       Repositories,
	"repository": Repositories,
	"topic":      Topics,
	"user":       Users,
}

// All returns every kind in a stable order.
func All() []Kind {
	return []Kind{Code, Commits, Issues, Labels, Repositories, Topics, Users}
}

// Endpoint returns the literal endpoint path, or "" for an unknown kind.
func (k Kind) Endpoint() string { return endpoints[k] }

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	_, ok := endpoints[k]
	return ok
}

// HasQualifiers reports whether the kind accepts qualifier tokens.
func (k Kind) HasQualifiers() bool { return k.Valid() && k != Labels }

// HasSortOrder reports whether the kind sends sort and order parameters.
func (k Kind) HasSortOrder() bool { return k.Valid() && k != Topics }

// Parse resolves a kind by canonical name or alias, case-insensitively.
func Parse(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if k := Kind(name); k.Valid() {
		return k, nil
	}
	if k, ok := aliases[name]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownResource, s)
}
