package query

import (
	"strconv"
	"strings"
)

// Parameter names understood by the search API.
const (
	ParamQuery        = "q"
	ParamSort         = "sort"
	ParamOrder        = "order"
	ParamRepositoryID = "repository_id"
)

// Term joins keywords followed by qualifiers with "+".
func Term(kw *Keywords, qs *Qualifiers) string {
	parts := kw.All()
	if qs != nil {
		parts = append(parts, qs.items...)
	}
	return strings.Join(parts, "+")
}

// Standard assembles q, sort and order. Used by code, commits, issues,
// repositories and users.
func Standard(kw *Keywords, qs *Qualifiers, so *SortOrder) Params {
	return Params{}.
		Add(ParamQuery, Term(kw, qs)).
		Add(ParamSort, so.Sort()).
		Add(ParamOrder, so.Order())
}

// Topics assembles q only; topic search has no ranking parameters.
func Topics(kw *Keywords, qs *Qualifiers) Params {
	return Params{}.Add(ParamQuery, Term(kw, qs))
}

// Labels assembles repository_id, q (keywords only), sort and order.
func Labels(repositoryID int64, kw *Keywords, so *SortOrder) Params {
	return Params{}.
		Add(ParamRepositoryID, strconv.FormatInt(repositoryID, 10)).
		Add(ParamQuery, Term(kw, nil)).
		Add(ParamSort, so.Sort()).
		Add(ParamOrder, so.Order())
}
