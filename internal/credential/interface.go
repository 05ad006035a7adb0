package credential

import (
	"context"

	"github.com/elhenawym124-ops/chatai-sub002/pkg/gemini"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Admin lifecycle
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, companyID string) ([]WithModels, error)
	ToggleCredential(ctx context.Context, companyID, credentialID string) (Credential, error)
	ToggleModel(ctx context.Context, companyID, credentialID, modelID string) (Model, error)
	SetModel(ctx context.Context, companyID, credentialID, modelID string) error
	Delete(ctx context.Context, companyID, credentialID string) error

	// Catalog
	AvailableModels() []gemini.ModelInfo

	// Routing support
	ListCandidates(ctx context.Context, companyID string) ([]Candidate, error)
	GetCandidate(ctx context.Context, companyID, credentialID string) ([]Candidate, error)
	SyncUsage(ctx context.Context, input SyncUsageInput) error
}
