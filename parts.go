package ghsearch

import (
	"github.com/kailas-cloud/ghsearch/internal/domain"
	"github.com/kailas-cloud/ghsearch/internal/domain/qualifier"
	"github.com/kailas-cloud/ghsearch/internal/domain/query"
)

// Operator is a comparison operator for single-range qualifiers.
type Operator = qualifier.Operator

// Recognized comparison operators.
const (
	LessThan       = qualifier.LessThan
	LessOrEqual    = qualifier.LessOrEqual
	GreaterThan    = qualifier.GreaterThan
	GreaterOrEqual = qualifier.GreaterOrEqual
)

// Builders are composed from the parts below. Each part owns one slice of
// state and returns the concrete builder B so calls keep chaining.

type keywordPart[B any] struct {
	self     B
	keywords query.Keywords
}

// AddKeyword appends a free-text term. No trimming or deduplication.
func (p *keywordPart[B]) AddKeyword(keyword string) B {
	p.keywords.Add(keyword)
	return p.self
}

// AddKeywords appends several free-text terms in order.
func (p *keywordPart[B]) AddKeywords(keywords ...string) B {
	for _, k := range keywords {
		p.keywords.Add(k)
	}
	return p.self
}

// Keywords returns a copy of the accumulated terms.
func (p *keywordPart[B]) Keywords() []string { return p.keywords.All() }

type qualifierPart[B any] struct {
	self       B
	qualifiers query.Qualifiers
	// reported is how many drops were already handed to the observer.
	reported int
}

// AddStringQualifier appends name:value, or -name:value when negative.
func (p *qualifierPart[B]) AddStringQualifier(name, value string, negative bool) B {
	p.qualifiers.AddString(name, value, negative)
	return p.self
}

// AddSingleRangeQualifier appends op:namevalue. An unrecognized operator
// appends nothing and is counted in DroppedQualifiers.
func (p *qualifierPart[B]) AddSingleRangeQualifier(name, value string, op Operator) B {
	query.AddSingleRange(&p.qualifiers, name, value, op)
	return p.self
}

// AddRangeQualifier appends name:min..max, ordering the bounds lexicographically.
func (p *qualifierPart[B]) AddRangeQualifier(name, first, second string) B {
	query.AddRange(&p.qualifiers, name, first, second)
	return p.self
}

// AddCountRangeQualifier appends name:min..max, ordering the bounds numerically.
func (p *qualifierPart[B]) AddCountRangeQualifier(name string, first, second int) B {
	query.AddRange(&p.qualifiers, name, first, second)
	return p.self
}

// Apply appends declarative filters in order.
func (p *qualifierPart[B]) Apply(filters ...Filter) B {
	for _, f := range filters {
		f.appendTo(&p.qualifiers)
	}
	return p.self
}

// Qualifiers returns a copy of the accumulated qualifier tokens.
func (p *qualifierPart[B]) Qualifiers() []string { return p.qualifiers.All() }

// DroppedQualifiers returns how many single-range qualifiers were skipped
// for an unrecognized operator.
func (p *qualifierPart[B]) DroppedQualifiers() int { return p.qualifiers.Dropped() }

func (p *qualifierPart[B]) is(name, value string) B {
	p.qualifiers.AddString(name, value, false)
	return p.self
}

func (p *qualifierPart[B]) count(name string, n int, op Operator) B {
	query.AddSingleRange(&p.qualifiers, name, n, op)
	return p.self
}

func (p *qualifierPart[B]) countRange(name string, first, second int) B {
	query.AddRange(&p.qualifiers, name, first, second)
	return p.self
}

func (p *qualifierPart[B]) date(name, date string, op Operator) B {
	query.AddSingleRange(&p.qualifiers, name, date, op)
	return p.self
}

func (p *qualifierPart[B]) dateRange(name, first, second string) B {
	query.AddRange(&p.qualifiers, name, first, second)
	return p.self
}

// newDrops returns the drops not yet reported and marks them reported,
// so repeated searches on one builder count each drop once.
func (p *qualifierPart[B]) newDrops() int {
	n := p.qualifiers.Dropped() - p.reported
	p.reported = p.qualifiers.Dropped()
	return n
}

func (p *qualifierPart[B]) checkDropped(strict bool) error {
	if n := p.qualifiers.Dropped(); strict && n > 0 {
		return &domain.DroppedQualifiersError{Count: n}
	}
	return nil
}

type sortPart[B any] struct {
	self      B
	sortOrder query.SortOrder
}

// SetSort sets the sort field. Defaults to "score".
func (p *sortPart[B]) SetSort(sort string) B {
	p.sortOrder.SetSort(sort)
	return p.self
}

// Sort returns the sort field.
func (p *sortPart[B]) Sort() string { return p.sortOrder.Sort() }

// SetOrder sets the sort direction. Defaults to "desc".
func (p *sortPart[B]) SetOrder(order string) B {
	p.sortOrder.SetOrder(order)
	return p.self
}

// Order returns the sort direction.
func (p *sortPart[B]) Order() string { return p.sortOrder.Order() }
