package domain

import "errors"

// ============================================================================
// Search Errors
// ============================================================================

// Validation errors
var (
	ErrInvalidQuery = errors.New("search query is required")
)

// Upstream errors
var (
	ErrUpstreamRequest  = errors.New("upstream request failed")
	ErrUpstreamStatus   = errors.New("upstream returned an error status")
	ErrUpstreamResponse = errors.New("upstream returned a malformed response")
)

// IsUpstreamError reports whether err came from a collection provider.
func IsUpstreamError(err error) bool {
	return errors.Is(err, ErrUpstreamRequest) ||
		errors.Is(err, ErrUpstreamStatus) ||
		errors.Is(err, ErrUpstreamResponse)
}
