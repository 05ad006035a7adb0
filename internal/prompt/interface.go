package prompt

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Compose builds the effective instruction payload for a tenant by
	// merging the stored prompt with active learned patterns.
	Compose(ctx context.Context, companyID string) (ComposeOutput, error)

	// Prompt storage
	GetPrompts(ctx context.Context, companyID string) (PromptSet, error)
	UpdatePrompts(ctx context.Context, input UpdatePromptsInput) (PromptSet, error)

	// Priority settings
	GetSettings(ctx context.Context, companyID string) (PrioritySettings, error)
	UpdateSettings(ctx context.Context, input UpdateSettingsInput) (PrioritySettings, error)

	// TestConflict dry-runs the conflict resolver against operator-supplied
	// inputs without touching stored state.
	TestConflict(ctx context.Context, input TestConflictInput) (Report, error)
}
