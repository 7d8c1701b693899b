package types

import "errors"

// Sentinel errors for the aggregation core. Layers wrap these with
// fmt.Errorf("...: %w", ...) and the HTTP boundary maps them to status
// codes with errors.Is.
var (
	// ErrValidation marks user-correctable bad input (422).
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an absent internal recipe (404).
	ErrNotFound = errors.New("recipe not found")

	// ErrUpstreamNotFound marks an external id the upstream confirmed
	// absent (404).
	ErrUpstreamNotFound = errors.New("recipe not found upstream")

	// ErrUpstreamError marks any other upstream failure: timeout,
	// non-2xx, malformed payload (502).
	ErrUpstreamError = errors.New("upstream request failed")

	// ErrReadOnlySource marks a mutation attempt on an external recipe,
	// rejected before any store access (403).
	ErrReadOnlySource = errors.New("recipe source is read-only")
)
