package usage

import (
	"time"

	"github.com/elhenawym124-ops/chatai-sub002/internal/model"
)

// Record is one routing attempt outcome, append-only. Records are the
// audit trail behind usage stats; they are never updated or deleted.
type Record struct {
	ID           string
	CompanyID    string
	CredentialID string
	ModelID      string
	Outcome      model.Outcome
	LatencyMs    int64
	CreatedAt    time.Time
}

// RecordInput carries the fields the router knows at settle time.
type RecordInput struct {
	CompanyID    string
	CredentialID string
	ModelID      string
	Outcome      model.Outcome
	LatencyMs    int64
}

// Period selects the stats aggregation window.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// Valid reports whether p is a known period.
func (p Period) Valid() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return true
	}
	return false
}

// Duration is the look-back window the period covers.
func (p Period) Duration() time.Duration {
	switch p {
	case PeriodWeek:
		return 7 * 24 * time.Hour
	case PeriodMonth:
		return 30 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// ModelStats is the per-model slice of an aggregation.
type ModelStats struct {
	ModelID       string
	TotalRequests int
	SuccessCount  int
}

// Stats is the aggregated usage view for one tenant and period.
type Stats struct {
	Period        Period
	TotalRequests int
	SuccessCount  int
	FailureRate   float64
	PerModel      []ModelStats
}
