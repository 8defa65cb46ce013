package ghsearch

import "github.com/kailas-cloud/ghsearch/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrInvalidOperator      = domain.ErrInvalidOperator
	ErrRepositoryIDRequired = domain.ErrRepositoryIDRequired
	ErrUnknownResource      = domain.ErrUnknownResource
	ErrInvalidRequest       = domain.ErrInvalidRequest
	ErrUpstreamUnavailable  = domain.ErrUpstreamUnavailable
)

// DroppedQualifiersError is returned in strict mode when single-range
// qualifiers were skipped. It unwraps to ErrInvalidOperator.
type DroppedQualifiersError = domain.DroppedQualifiersError
