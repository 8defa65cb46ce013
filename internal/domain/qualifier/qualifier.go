// Package qualifier encodes tokens of the search qualifier mini-language:
// name:value, -name:value, op:namevalue and name:min..max.
package qualifier

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/kailas-cloud/ghsearch/internal/domain"
)

// Operator is a comparison operator for single-sided range qualifiers.
type Operator string

// Recognized comparison operators.
const (
	LessThan       Operator = "<"
	LessOrEqual    Operator = "<="
	GreaterThan    Operator = ">"
	GreaterOrEqual Operator = ">="
)

// Valid reports whether o is one of the four recognized operators.
func (o Operator) Valid() bool {
	switch o {
	case LessThan, LessOrEqual, GreaterThan, GreaterOrEqual:
		return true
	default:
		return false
	}
}

// ParseOperator converts s into an Operator.
func ParseOperator(s string) (Operator, error) {
	op := Operator(strings.TrimSpace(s))
	if !op.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidOperator, s)
	}
	return op, nil
}

// Value is anything a single-range qualifier accepts: counts and dates.
type Value interface {
	~string | ~int | ~int64 | ~uint | ~uint64
}

// String encodes a plain qualifier. The value is not escaped.
func String(name, value string, negative bool) string {
	if negative {
		return "-" + name + ":" + value
	}
	return name + ":" + value
}

// SingleRange encodes a one-sided range qualifier as "{op}:{name}{value}".
// Returns ok=false for an unrecognized operator.
func SingleRange[V Value](name string, value V, op Operator) (string, bool) {
	if !op.Valid() {
		return "", false
	}
	return fmt.Sprintf("%s:%s%v", op, name, value), true
}

// Unbounded is the open side of a range, as in stars:10..*.
const Unbounded = "*"

// OpenRange encodes "{name}:{from}..{to}" with the bounds kept in argument
// order. Used when one side is Unbounded, where sorting would flip the meaning.
func OpenRange(name, from, to string) string {
	return name + ":" + from + ".." + to
}

// Range encodes "{name}:{min}..{max}". Bounds are ordered by comparison, not by argument position.
func Range[T cmp.Ordered](name string, first, second T) string {
	return fmt.Sprintf("%s:%v..%v", name, min(first, second), max(first, second))
}

// Path joins owner/repository style segments with "/".
func Path(segments ...string) string {
	return strings.Join(segments, "/")
}
