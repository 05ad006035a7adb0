package usecase

import (
	"context"
	"strings"

	"github.com/elhenawym124-ops/chatai-sub002/internal/pattern"
	"github.com/elhenawym124-ops/chatai-sub002/internal/prompt"
	"github.com/elhenawym124-ops/chatai-sub002/internal/prompt/resolver"
)

// TestConflict dry-runs the resolver against operator-supplied inputs. It
// uses the tenant's stored settings (detection forced on, persistence
// forced off) so the operator previews exactly what production resolution
// would do.
func (uc *implUseCase) TestConflict(ctx context.Context, input prompt.TestConflictInput) (prompt.Report, error) {
	if strings.TrimSpace(input.Prompt) == "" && len(input.Patterns) == 0 {
		return prompt.Report{}, prompt.ErrEmptyPrompt
	}

	settings, err := uc.settingsOrDefault(ctx, input.CompanyID)
	if err != nil {
		return prompt.Report{}, err
	}
	settings.AutoDetectConflicts = true
	settings.ConflictReports = false

	ps := prompt.PromptSet{
		CompanyID:      input.CompanyID,
		ResponsePrompt: input.Prompt,
	}

	_, report := resolver.Resolve(ps, toPatterns(input.Patterns), settings)
	return report, nil
}

// toPatterns converts the request-shaped dry-run patterns into store
// patterns.
func toPatterns(in []prompt.TestPattern) []pattern.Pattern {
	out := make([]pattern.Pattern, 0, len(in))
	for _, tp := range in {
		switch pattern.Type(tp.Type) {
		case pattern.TypeWordUsage:
			out = append(out, pattern.Pattern{
				Type:      pattern.TypeWordUsage,
				WordUsage: &pattern.WordUsagePayload{Preferred: tp.Preferred, Avoided: tp.Avoided},
			})
		case pattern.TypeResponseStyle:
			out = append(out, pattern.Pattern{
				Type:          pattern.TypeResponseStyle,
				ResponseStyle: &pattern.ResponseStylePayload{Tone: tp.Tone, Length: tp.Length},
			})
		}
	}
	return out
}
