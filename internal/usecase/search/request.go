package search

import (
	"fmt"

	"github.com/kailas-cloud/ghsearch"
	"github.com/kailas-cloud/ghsearch/internal/domain"
	"github.com/kailas-cloud/ghsearch/internal/domain/resource"
)

// Request describes one search as data.
type Request struct {
	Kind     resource.Kind
	Keywords []string
	Filters  []ghsearch.Filter
	Sort     string
	Order    string
	// RepositoryID is required for labels and rejected elsewhere.
	RepositoryID *int64
	TextMatches  bool
}

// Validate checks the request against what its resource accepts.
func (r *Request) Validate() error {
	if !r.Kind.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownResource, r.Kind)
	}
	for _, f := range r.Filters {
		if err := f.Validate(); err != nil {
			return err
		}
	}

	if !r.Kind.HasQualifiers() && len(r.Filters) > 0 {
		return fmt.Errorf("%w: %s search does not accept filters", domain.ErrInvalidRequest, r.Kind)
	}
	if !r.Kind.HasSortOrder() && (r.Sort != "" || r.Order != "") {
		return fmt.Errorf("%w: %s search does not accept sort or order", domain.ErrInvalidRequest, r.Kind)
	}

	switch {
	case r.Kind == resource.Labels && r.RepositoryID == nil:
		return domain.ErrRepositoryIDRequired
	case r.Kind != resource.Labels && r.RepositoryID != nil:
		return fmt.Errorf("%w: repository_id only applies to labels", domain.ErrInvalidRequest)
	}
	return nil
}

func (r *Request) options() []ghsearch.SearchOption {
	if r.TextMatches {
		return []ghsearch.SearchOption{ghsearch.TextMatches()}
	}
	return nil
}
