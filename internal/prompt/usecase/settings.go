package usecase

import (
	"context"

	"github.com/elhenawym124-ops/chatai-sub002/internal/prompt"
)

// GetSettings returns the tenant's priority settings, falling back to
// defaults when none were saved.
func (uc *implUseCase) GetSettings(ctx context.Context, companyID string) (prompt.PrioritySettings, error) {
	return uc.settingsOrDefault(ctx, companyID)
}

// UpdateSettings validates and writes the full settings row.
func (uc *implUseCase) UpdateSettings(ctx context.Context, input prompt.UpdateSettingsInput) (prompt.PrioritySettings, error) {
	s := input.Settings

	if !s.PromptPriority.Valid() || !s.PatternsPriority.Valid() {
		return prompt.PrioritySettings{}, prompt.ErrInvalidPriority
	}
	if !s.ConflictResolution.Valid() {
		return prompt.PrioritySettings{}, prompt.ErrInvalidPolicy
	}

	out, err := uc.repo.UpsertSettings(ctx, s)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateSettings UpsertSettings: %v", err)
		return prompt.PrioritySettings{}, err
	}

	uc.cache.Remove(s.CompanyID)
	return out, nil
}
