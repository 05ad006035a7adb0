package repository

import (
	"context"

	"github.com/elhenawym124-ops/chatai-sub002/internal/usage"
)

// Repository defines data access for usage records.
type Repository interface {
	CreateRecord(ctx context.Context, record usage.Record) error
	AggregateStats(ctx context.Context, opt AggregateStatsOptions) ([]StatsRow, error)
}
