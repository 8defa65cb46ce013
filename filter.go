package ghsearch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kailas-cloud/ghsearch/internal/domain/qualifier"
	"github.com/kailas-cloud/ghsearch/internal/domain/query"
)

// Filter is a qualifier described as data, for callers that assemble
// searches from configuration, flags or JSON.
//
// From/To select a two-sided range, Operator a one-sided range,
// otherwise the filter is a plain (optionally negated) match.
type Filter struct {
	Name     string
	Value    string
	Negative bool
	Operator Operator
	From     string
	To       string
}

// Match filters on name:value.
func Match(name, value string) Filter {
	return Filter{Name: name, Value: value}
}

// Exclude filters on -name:value.
func Exclude(name, value string) Filter {
	return Filter{Name: name, Value: value, Negative: true}
}

// Compare filters on a one-sided range.
func Compare(name string, op Operator, value string) Filter {
	return Filter{Name: name, Value: value, Operator: op}
}

// Between filters on a two-sided range.
func Between(name, from, to string) Filter {
	return Filter{Name: name, From: from, To: to}
}

// IsRange reports whether f is a two-sided range.
func (f Filter) IsRange() bool { return f.From != "" || f.To != "" }

// Validate reports filters that cannot produce a meaningful token.
func (f Filter) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("%w: filter name is required", ErrInvalidRequest)
	}
	switch {
	case f.IsRange():
		if f.From == "" || f.To == "" {
			return fmt.Errorf("%w: range filter %q needs both bounds", ErrInvalidRequest, f.Name)
		}
		if f.Operator != "" || f.Negative {
			return fmt.Errorf("%w: range filter %q cannot have an operator or negation", ErrInvalidRequest, f.Name)
		}
	case f.Operator != "":
		if !f.Operator.Valid() {
			return fmt.Errorf("%w: %q on filter %q", ErrInvalidOperator, f.Operator, f.Name)
		}
		if f.Negative {
			return fmt.Errorf("%w: range filter %q cannot be negated", ErrInvalidRequest, f.Name)
		}
	}
	return nil
}

// String renders the token f appends, or "" when its operator is unrecognized.
func (f Filter) String() string {
	var q query.Qualifiers
	f.appendTo(&q)
	if q.Len() == 0 {
		return ""
	}
	return q.All()[0]
}

func (f Filter) appendTo(q *query.Qualifiers) {
	switch {
	case f.IsRange():
		if f.From == qualifier.Unbounded || f.To == qualifier.Unbounded {
			query.AddOpenRange(q, f.Name, f.From, f.To)
			return
		}
		from, errFrom := strconv.Atoi(f.From)
		to, errTo := strconv.Atoi(f.To)
		if errFrom == nil && errTo == nil {
			query.AddRange(q, f.Name, from, to)
			return
		}
		query.AddRange(q, f.Name, f.From, f.To)
	case f.Operator != "":
		query.AddSingleRange(q, f.Name, f.Value, f.Operator)
	default:
		q.AddString(f.Name, f.Value, f.Negative)
	}
}

// ParseFilter reads the notation people type into a search box:
//
//	language:go      match
//	-label:wontfix   exclusion
//	stars:>=100      one-sided range
//	created:2020-01-01..2021-01-01  two-sided range
//	stars:10..*      open-ended range, bounds kept as written
func ParseFilter(s string) (Filter, error) {
	s = strings.TrimSpace(s)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	name, value, ok := strings.Cut(s, ":")
	if !ok || name == "" {
		return Filter{}, fmt.Errorf("%w: filter %q must look like name:value", ErrInvalidRequest, s)
	}

	if from, to, isRange := strings.Cut(value, ".."); isRange && !negative {
		f := Between(name, from, to)
		return f, f.Validate()
	}

	for _, op := range []Operator{qualifier.GreaterOrEqual, qualifier.LessOrEqual, qualifier.GreaterThan, qualifier.LessThan} {
		if rest, found := strings.CutPrefix(value, string(op)); found && !negative {
			return Compare(name, op, rest), nil
		}
	}

	return Filter{Name: name, Value: value, Negative: negative}, nil
}
