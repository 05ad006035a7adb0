package routing

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Route answers one end-user message: candidates are tried in
	// priority order, each behind quota admission, until one provider
	// call succeeds. Terminal failure is ErrAllProvidersExhausted.
	Route(ctx context.Context, companyID string, input RouteInput) (RouteOutput, error)

	// TestCredential routes a canned message against a single forced
	// credential, bypassing the rest of the candidate list. Used by the
	// admin key test endpoint.
	TestCredential(ctx context.Context, companyID, credentialID string) (RouteOutput, error)
}

// Caller is the provider call behind the router. pkg/gemini's Client
// satisfies it.
type Caller interface {
	Generate(ctx context.Context, apiKey, model, system, message string) (string, error)
}
