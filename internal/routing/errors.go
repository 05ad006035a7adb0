package routing

import "errors"

var (
	// ErrAllProvidersExhausted is the router's only terminal failure: every
	// candidate was denied or failed. Per-candidate reasons never cross
	// this boundary; they live in usage records and logs.
	ErrAllProvidersExhausted = errors.New("all providers exhausted")

	// ErrEmptyMessage indicates a route request without a message.
	ErrEmptyMessage = errors.New("empty message")
)
