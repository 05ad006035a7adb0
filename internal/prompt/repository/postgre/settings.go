package postgre

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/elhenawym124-ops/chatai-sub002/internal/prompt"
	repo "github.com/elhenawym124-ops/chatai-sub002/internal/prompt/repository"
)

// GetSettings loads priority settings for a tenant. The boolean reports
// whether a stored row existed; callers fall back to defaults when false.
func (r *implRepository) GetSettings(ctx context.Context, companyID string) (prompt.PrioritySettings, bool, error) {
	const query = `
		SELECT company_id, prompt_priority, patterns_priority, conflict_resolution,
		       enforce_personality, enforce_language_style, auto_detect_conflicts,
		       conflict_reports, updated_at
		FROM priority_settings
		WHERE company_id = $1`

	var s prompt.PrioritySettings
	err := r.db.QueryRowContext(ctx, query, companyID).Scan(
		&s.CompanyID, &s.PromptPriority, &s.PatternsPriority, &s.ConflictResolution,
		&s.EnforcePersonality, &s.EnforceLanguageStyle, &s.AutoDetectConflicts,
		&s.ConflictReports, &s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return prompt.PrioritySettings{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "prompt/repository/postgre.GetSettings: %v", err)
		return prompt.PrioritySettings{}, false, repo.ErrFailedToGet
	}
	return s, true, nil
}

// UpsertSettings writes the full settings row for a tenant.
func (r *implRepository) UpsertSettings(ctx context.Context, s prompt.PrioritySettings) (prompt.PrioritySettings, error) {
	const query = `
		INSERT INTO priority_settings (
			company_id, prompt_priority, patterns_priority, conflict_resolution,
			enforce_personality, enforce_language_style, auto_detect_conflicts,
			conflict_reports, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (company_id) DO UPDATE
		SET prompt_priority        = EXCLUDED.prompt_priority,
		    patterns_priority      = EXCLUDED.patterns_priority,
		    conflict_resolution    = EXCLUDED.conflict_resolution,
		    enforce_personality    = EXCLUDED.enforce_personality,
		    enforce_language_style = EXCLUDED.enforce_language_style,
		    auto_detect_conflicts  = EXCLUDED.auto_detect_conflicts,
		    conflict_reports       = EXCLUDED.conflict_reports,
		    updated_at             = NOW()
		RETURNING company_id, prompt_priority, patterns_priority, conflict_resolution,
		          enforce_personality, enforce_language_style, auto_detect_conflicts,
		          conflict_reports, updated_at`

	var out prompt.PrioritySettings
	err := r.db.QueryRowContext(ctx, query,
		s.CompanyID, s.PromptPriority, s.PatternsPriority, s.ConflictResolution,
		s.EnforcePersonality, s.EnforceLanguageStyle, s.AutoDetectConflicts, s.ConflictReports,
	).Scan(
		&out.CompanyID, &out.PromptPriority, &out.PatternsPriority, &out.ConflictResolution,
		&out.EnforcePersonality, &out.EnforceLanguageStyle, &out.AutoDetectConflicts,
		&out.ConflictReports, &out.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "prompt/repository/postgre.UpsertSettings: %v", err)
		return prompt.PrioritySettings{}, repo.ErrFailedToUpsert
	}
	return out, nil
}

// CreateConflictReport appends a resolver report for operator review.
func (r *implRepository) CreateConflictReport(ctx context.Context, companyID string, report prompt.Report) error {
	const query = `
		INSERT INTO conflict_reports (company_id, conflicts, recommendations, max_severity, created_at)
		VALUES ($1, $2, $3, $4, NOW())`

	conflicts, err := json.Marshal(report.Conflicts)
	if err != nil {
		return repo.ErrFailedToInsert
	}
	recommendations, err := json.Marshal(report.Recommendations)
	if err != nil {
		return repo.ErrFailedToInsert
	}

	if _, err := r.db.ExecContext(ctx, query, companyID, conflicts, recommendations, string(report.MaxSeverity())); err != nil {
		r.l.Errorf(ctx, "prompt/repository/postgre.CreateConflictReport: %v", err)
		return repo.ErrFailedToInsert
	}
	return nil
}
