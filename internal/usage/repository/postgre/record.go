package postgre

import (
	"context"

	"github.com/elhenawym124-ops/chatai-sub002/internal/usage"
	repo "github.com/elhenawym124-ops/chatai-sub002/internal/usage/repository"
)

// CreateRecord appends one attempt outcome. Records are insert-only.
func (r *implRepository) CreateRecord(ctx context.Context, record usage.Record) error {
	query := `
		INSERT INTO ai_usage_records (id, company_id, credential_id, model_id, outcome, latency_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		record.ID, record.CompanyID, record.CredentialID, record.ModelID,
		string(record.Outcome), record.LatencyMs, record.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "usage/repository/postgre.CreateRecord: %v", err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// AggregateStats buckets the tenant's records by model and outcome since
// the given time. The shaping into totals and rates happens in the
// usecase; SQL only counts.
func (r *implRepository) AggregateStats(ctx context.Context, opt repo.AggregateStatsOptions) ([]repo.StatsRow, error) {
	query := `
		SELECT model_id, outcome, COUNT(*)
		FROM ai_usage_records
		WHERE company_id = $1 AND created_at >= $2
		GROUP BY model_id, outcome
		ORDER BY model_id, outcome`

	rows, err := r.db.QueryContext(ctx, query, opt.CompanyID, opt.Since)
	if err != nil {
		r.l.Errorf(ctx, "usage/repository/postgre.AggregateStats: %v", err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []repo.StatsRow
	for rows.Next() {
		var row repo.StatsRow
		if err := rows.Scan(&row.ModelID, &row.Outcome, &row.Count); err != nil {
			r.l.Errorf(ctx, "usage/repository/postgre.AggregateStats scan: %v", err)
			return nil, repo.ErrFailedToList
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "usage/repository/postgre.AggregateStats rows: %v", err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}
