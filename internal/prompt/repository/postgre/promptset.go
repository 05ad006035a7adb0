package postgre

import (
	"context"
	"database/sql"

	"github.com/elhenawym124-ops/chatai-sub002/internal/prompt"
	repo "github.com/elhenawym124-ops/chatai-sub002/internal/prompt/repository"
)

// GetPromptSet loads the tenant's stored prompt pair. Returns a zero-value
// PromptSet (empty texts) when the tenant never saved one.
func (r *implRepository) GetPromptSet(ctx context.Context, companyID string) (prompt.PromptSet, error) {
	const query = `
		SELECT company_id, personality_prompt, response_prompt, updated_at
		FROM prompt_sets
		WHERE company_id = $1`

	var ps prompt.PromptSet
	err := r.db.QueryRowContext(ctx, query, companyID).Scan(
		&ps.CompanyID, &ps.PersonalityPrompt, &ps.ResponsePrompt, &ps.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return prompt.PromptSet{CompanyID: companyID}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "prompt/repository/postgre.GetPromptSet: %v", err)
		return prompt.PromptSet{}, repo.ErrFailedToGet
	}
	return ps, nil
}

// UpsertPromptSet writes the prompt pair as one row per tenant. Row-level
// upsert: two operators saving concurrently race on the row, not on a
// whole file.
func (r *implRepository) UpsertPromptSet(ctx context.Context, ps prompt.PromptSet) (prompt.PromptSet, error) {
	const query = `
		INSERT INTO prompt_sets (company_id, personality_prompt, response_prompt, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (company_id) DO UPDATE
		SET personality_prompt = EXCLUDED.personality_prompt,
		    response_prompt    = EXCLUDED.response_prompt,
		    updated_at         = NOW()
		RETURNING company_id, personality_prompt, response_prompt, updated_at`

	var out prompt.PromptSet
	err := r.db.QueryRowContext(ctx, query, ps.CompanyID, ps.PersonalityPrompt, ps.ResponsePrompt).Scan(
		&out.CompanyID, &out.PersonalityPrompt, &out.ResponsePrompt, &out.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "prompt/repository/postgre.UpsertPromptSet: %v", err)
		return prompt.PromptSet{}, repo.ErrFailedToUpsert
	}
	return out, nil
}
