package pattern

import "context"

// Source is the read interface over the externally-maintained pattern
// store. Pattern discovery runs out-of-band; this core only consumes
// approved patterns.
type Source interface {
	Active(ctx context.Context, companyID string) ([]Pattern, error)
}
