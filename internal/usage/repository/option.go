package repository

import "time"

// AggregateStatsOptions bounds the aggregation query.
type AggregateStatsOptions struct {
	CompanyID string
	Since     time.Time
}

// StatsRow is one (model, outcome) aggregation bucket.
type StatsRow struct {
	ModelID string
	Outcome string
	Count   int
}
