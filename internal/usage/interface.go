package usage

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Record appends one attempt outcome. Recording is best-effort from
	// the router's point of view; failures are logged, not propagated.
	Record(ctx context.Context, input RecordInput) error

	// Stats aggregates the tenant's records over the period. An empty
	// period defaults to day.
	Stats(ctx context.Context, companyID string, period Period) (Stats, error)
}
