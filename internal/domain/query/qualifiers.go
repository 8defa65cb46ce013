package query

import (
	"cmp"

	"github.com/kailas-cloud/ghsearch/internal/domain/qualifier"
)

// Qualifiers is an ordered, append-only list of qualifier tokens.
// It also counts single-range qualifiers dropped for an unrecognized operator.
type Qualifiers struct {
	items   []string
	dropped int
}

// AddString appends a name:value token, prefixed with "-" when negative.
func (q *Qualifiers) AddString(name, value string, negative bool) {
	q.items = append(q.items, qualifier.String(name, value, negative))
}

// All returns a copy of the tokens in insertion order.
func (q *Qualifiers) All() []string {
	out := make([]string, len(q.items))
	copy(out, q.items)
	return out
}

// Len returns the number of tokens.
func (q *Qualifiers) Len() int { return len(q.items) }

// Dropped returns how many single-range qualifiers were silently skipped.
func (q *Qualifiers) Dropped() int { return q.dropped }

// AddSingleRange appends an op:namevalue token. An unrecognized operator
// leaves the list unchanged and reports false.
func AddSingleRange[V qualifier.Value](q *Qualifiers, name string, value V, op qualifier.Operator) bool {
	token, ok := qualifier.SingleRange(name, value, op)
	if !ok {
		q.dropped++
		return false
	}
	q.items = append(q.items, token)
	return true
}

// AddOpenRange appends a name:from..to token without reordering the bounds.
func AddOpenRange(q *Qualifiers, name, from, to string) {
	q.items = append(q.items, qualifier.OpenRange(name, from, to))
}

// AddRange appends a name:min..max token.
func AddRange[T cmp.Ordered](q *Qualifiers, name string, first, second T) {
	q.items = append(q.items, qualifier.Range(name, first, second))
}
