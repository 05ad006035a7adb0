package usecase

import (
	"context"

	"github.com/elhenawym124-ops/chatai-sub002/internal/prompt"
	"github.com/elhenawym124-ops/chatai-sub002/internal/prompt/resolver"
)

// Compose builds the effective instruction payload for a tenant: stored
// prompt + active patterns through the conflict resolver. An empty prompt
// is not an error — patterns alone seed the effective prompt.
func (uc *implUseCase) Compose(ctx context.Context, companyID string) (prompt.ComposeOutput, error) {
	if cached, ok := uc.cache.Get(companyID); ok {
		return cached, nil
	}

	ps, err := uc.repo.GetPromptSet(ctx, companyID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Compose GetPromptSet: %v", err)
		return prompt.ComposeOutput{}, err
	}

	settings, err := uc.settingsOrDefault(ctx, companyID)
	if err != nil {
		return prompt.ComposeOutput{}, err
	}

	patterns, err := uc.patterns.Active(ctx, companyID)
	if err != nil {
		// Pattern store trouble must not block customer messages; compose
		// from the operator prompt alone.
		uc.l.Warnf(ctx, "uc.Compose patterns unavailable for %s: %v", companyID, err)
		patterns = nil
	}

	eff, report := resolver.Resolve(ps, patterns, settings)

	if settings.ConflictReports && report.HasConflicts {
		if err := uc.repo.CreateConflictReport(ctx, companyID, report); err != nil {
			// Report persistence is best-effort.
			uc.l.Warnf(ctx, "uc.Compose CreateConflictReport: %v", err)
		}
	}

	out := prompt.ComposeOutput{
		Effective:   eff,
		Instruction: eff.Serialize(),
		Report:      report,
	}
	uc.cache.Add(companyID, out)
	return out, nil
}

// settingsOrDefault loads stored settings or falls back to the defaults.
func (uc *implUseCase) settingsOrDefault(ctx context.Context, companyID string) (prompt.PrioritySettings, error) {
	settings, found, err := uc.repo.GetSettings(ctx, companyID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.settingsOrDefault GetSettings: %v", err)
		return prompt.PrioritySettings{}, err
	}
	if !found {
		return prompt.DefaultPrioritySettings(companyID), nil
	}
	return settings, nil
}
