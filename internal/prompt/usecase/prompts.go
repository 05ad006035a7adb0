package usecase

import (
	"context"

	"github.com/elhenawym124-ops/chatai-sub002/internal/prompt"
)

// GetPrompts returns the tenant's stored prompt pair (zero-value when the
// operator never configured one).
func (uc *implUseCase) GetPrompts(ctx context.Context, companyID string) (prompt.PromptSet, error) {
	ps, err := uc.repo.GetPromptSet(ctx, companyID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetPrompts GetPromptSet: %v", err)
		return prompt.PromptSet{}, err
	}
	return ps, nil
}

// UpdatePrompts overwrites the tenant's prompt pair and invalidates the
// composition cache. Saving empty texts clears the prompt.
func (uc *implUseCase) UpdatePrompts(ctx context.Context, input prompt.UpdatePromptsInput) (prompt.PromptSet, error) {
	ps, err := uc.repo.UpsertPromptSet(ctx, prompt.PromptSet{
		CompanyID:         input.CompanyID,
		PersonalityPrompt: input.PersonalityPrompt,
		ResponsePrompt:    input.ResponsePrompt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdatePrompts UpsertPromptSet: %v", err)
		return prompt.PromptSet{}, err
	}

	uc.cache.Remove(input.CompanyID)
	return ps, nil
}
