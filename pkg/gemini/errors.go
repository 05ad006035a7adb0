package gemini

import "errors"

var (
	// ErrInvalidAPIKey indicates the provider rejected the credential.
	ErrInvalidAPIKey = errors.New("gemini: invalid API key")

	// ErrRateLimited indicates the provider returned 429.
	ErrRateLimited = errors.New("gemini: rate limited")

	// ErrEmptyResponse indicates the provider returned no candidates.
	ErrEmptyResponse = errors.New("gemini: empty response")
)
