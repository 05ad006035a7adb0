package repository

import (
	"context"

	"github.com/elhenawym124-ops/chatai-sub002/internal/prompt"
)

// Repository is the data store contract for prompt configuration.
// Reads return zero values when no row exists — not-found is not an error
// here because every tenant implicitly has an empty prompt and default
// settings.
type Repository interface {
	GetPromptSet(ctx context.Context, companyID string) (prompt.PromptSet, error)
	UpsertPromptSet(ctx context.Context, ps prompt.PromptSet) (prompt.PromptSet, error)

	GetSettings(ctx context.Context, companyID string) (prompt.PrioritySettings, bool, error)
	UpsertSettings(ctx context.Context, s prompt.PrioritySettings) (prompt.PrioritySettings, error)

	// CreateConflictReport persists a resolver report for operator review.
	// Only called when the tenant opted in via settings.ConflictReports.
	CreateConflictReport(ctx context.Context, companyID string, report prompt.Report) error
}
