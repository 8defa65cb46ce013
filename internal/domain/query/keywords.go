// Package query holds the mutable search state of a builder and assembles it
// into an ordered, percent-encoded query string.
package query

// Keywords is an ordered, append-only list of free-text terms.
type Keywords struct {
	items []string
}

// Add appends a keyword as is. Duplicates are kept.
func (k *Keywords) Add(keyword string) {
	k.items = append(k.items, keyword)
}

// All returns a copy of the keywords in insertion order.
func (k *Keywords) All() []string {
	out := make([]string, len(k.items))
	copy(out, k.items)
	return out
}

// Len returns the number of keywords.
func (k *Keywords) Len() int { return len(k.items) }
