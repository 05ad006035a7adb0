package repository

import (
	"context"

	"github.com/elhenawym124-ops/chatai-sub002/internal/credential"
)

// Repository is the composed interface for the credential registry store.
type Repository interface {
	CredentialRepository
	ModelRepository
}

// CredentialRepository defines data access for Credential rows.
type CredentialRepository interface {
	CreateCredential(ctx context.Context, opt CreateCredentialOptions) (credential.Credential, error)
	GetOneCredential(ctx context.Context, opt GetOneCredentialOptions) (credential.Credential, error)
	ListCredentials(ctx context.Context, companyID string) ([]credential.Credential, error)
	SetCredentialEnabled(ctx context.Context, credentialID string, enabled bool) error
	DeleteCredential(ctx context.Context, credentialID string) error
}

// ModelRepository defines data access for Model rows and derived
// routing candidates.
type ModelRepository interface {
	CreateModels(ctx context.Context, models []credential.Model) error
	ListModels(ctx context.Context, credentialID string) ([]credential.Model, error)
	GetOneModel(ctx context.Context, credentialID, modelID string) (credential.Model, error)
	SetModelEnabled(ctx context.Context, credentialID, modelID string, enabled bool) error
	SetExclusiveModel(ctx context.Context, credentialID, modelID string) error
	UpdateModelUsage(ctx context.Context, opt UpdateModelUsageOptions) error

	// ListCandidates returns enabled credential × enabled model pairs for a
	// tenant ordered by (credential.priority, model.priority, credential_id,
	// model_id) — a total, deterministic order.
	ListCandidates(ctx context.Context, opt ListCandidatesOptions) ([]credential.Candidate, error)
}
