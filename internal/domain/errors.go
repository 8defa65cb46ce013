package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOperator signals a single-range qualifier with an unrecognized comparison operator.
	ErrInvalidOperator = errors.New("invalid range operator")
	// ErrRepositoryIDRequired signals a labels search without a repository id.
	ErrRepositoryIDRequired = errors.New("repository id is required")
	// ErrUnknownResource signals an unsupported search resource type.
	ErrUnknownResource = errors.New("unknown search resource")
	// ErrInvalidRequest signals a search request that cannot be applied to its resource.
	ErrInvalidRequest = errors.New("invalid search request")
	// ErrBatchTooLarge signals a batch exceeding the configured maximum.
	ErrBatchTooLarge = errors.New("batch too large")
	// ErrUpstreamUnavailable signals a transport-level failure talking to the search API.
	ErrUpstreamUnavailable = errors.New("search api unavailable")
)

// DroppedQualifiersError reports single-range qualifiers dropped for an unrecognized operator.
type DroppedQualifiersError struct {
	Count int
}

func (e *DroppedQualifiersError) Error() string {
	return fmt.Sprintf("%s: %d qualifier(s) dropped", ErrInvalidOperator.Error(), e.Count)
}

func (e *DroppedQualifiersError) Unwrap() error { return ErrInvalidOperator }
