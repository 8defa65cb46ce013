package query

// Defaults applied by every builder that carries ranking parameters.
const (
	DefaultSort  = "score"
	DefaultOrder = "desc"
)

// SortOrder holds the sort field and direction. The zero value reports the defaults.
// Values are not validated; the search API rejects unknown ones.
type SortOrder struct {
	sort  string
	order string
	set   uint8
}

const (
	sortSet uint8 = 1 << iota
	orderSet
)

// SetSort sets the sort field.
func (s *SortOrder) SetSort(sort string) {
	s.sort = sort
	s.set |= sortSet
}

// Sort returns the sort field, "score" unless set.
func (s *SortOrder) Sort() string {
	if s.set&sortSet == 0 {
		return DefaultSort
	}
	return s.sort
}

// SetOrder sets the sort direction.
func (s *SortOrder) SetOrder(order string) {
	s.order = order
	s.set |= orderSet
}

// Order returns the sort direction, "desc" unless set.
func (s *SortOrder) Order() string {
	if s.set&orderSet == 0 {
		return DefaultOrder
	}
	return s.order
}
