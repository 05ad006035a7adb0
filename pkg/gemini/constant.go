package gemini

import "time"

const (
	// DefaultAPIURL is the default Gemini Generative Language API endpoint.
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRequestsPerSecond paces outbound calls so a burst of routed
	// messages does not trip provider-side rate limits before our own
	// quota accounting kicks in.
	DefaultRequestsPerSecond = 5
	DefaultBurst             = 10
)
