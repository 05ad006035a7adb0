package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/elhenawym124-ops/chatai-sub002/internal/model"
	"github.com/elhenawym124-ops/chatai-sub002/internal/usage"
	repo "github.com/elhenawym124-ops/chatai-sub002/internal/usage/repository"
)

// Record appends one attempt outcome to the audit trail.
func (uc *implUseCase) Record(ctx context.Context, input usage.RecordInput) error {
	record := usage.Record{
		ID:           uuid.NewString(),
		CompanyID:    input.CompanyID,
		CredentialID: input.CredentialID,
		ModelID:      input.ModelID,
		Outcome:      input.Outcome,
		LatencyMs:    input.LatencyMs,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.CreateRecord(ctx, record); err != nil {
		uc.l.Errorf(ctx, "uc.Record CreateRecord: %v", err)
		return err
	}
	return nil
}

// Stats aggregates the tenant's records over the period. An empty period
// defaults to day.
func (uc *implUseCase) Stats(ctx context.Context, companyID string, period usage.Period) (usage.Stats, error) {
	if period == "" {
		period = usage.PeriodDay
	}
	if !period.Valid() {
		return usage.Stats{}, usage.ErrInvalidPeriod
	}

	rows, err := uc.repo.AggregateStats(ctx, repo.AggregateStatsOptions{
		CompanyID: companyID,
		Since:     time.Now().Add(-period.Duration()),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats AggregateStats: %v", err)
		return usage.Stats{}, err
	}

	stats := usage.Stats{Period: period}
	perModel := make(map[string]*usage.ModelStats)
	for _, row := range rows {
		ms, ok := perModel[row.ModelID]
		if !ok {
			ms = &usage.ModelStats{ModelID: row.ModelID}
			perModel[row.ModelID] = ms
		}
		ms.TotalRequests += row.Count
		stats.TotalRequests += row.Count
		if row.Outcome == string(model.OutcomeSuccess) {
			ms.SuccessCount += row.Count
			stats.SuccessCount += row.Count
		}
	}
	if stats.TotalRequests > 0 {
		stats.FailureRate = float64(stats.TotalRequests-stats.SuccessCount) / float64(stats.TotalRequests)
	}

	for _, ms := range perModel {
		stats.PerModel = append(stats.PerModel, *ms)
	}
	sort.Slice(stats.PerModel, func(i, j int) bool {
		return stats.PerModel[i].ModelID < stats.PerModel[j].ModelID
	})
	return stats, nil
}
