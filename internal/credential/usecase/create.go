package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/elhenawym124-ops/chatai-sub002/internal/credential"
	repo "github.com/elhenawym124-ops/chatai-sub002/internal/credential/repository"
	"github.com/elhenawym124-ops/chatai-sub002/pkg/gemini"
)

// Create registers a new credential and auto-populates the full supported
// model catalog: one model row per catalog entry, priority taken from the
// recommended ordering, default quota from the catalog. This removes
// manual per-model setup.
func (uc *implUseCase) Create(ctx context.Context, input credential.CreateInput) (credential.CreateOutput, error) {
	if strings.TrimSpace(input.Secret) == "" {
		return credential.CreateOutput{}, credential.ErrEmptySecret
	}
	if strings.TrimSpace(input.DisplayName) == "" {
		return credential.CreateOutput{}, credential.ErrEmptyName
	}

	// Business validation: display name unique per tenant.
	existing, err := uc.repo.GetOneCredential(ctx, repo.GetOneCredentialOptions{
		CompanyID:   input.CompanyID,
		DisplayName: input.DisplayName,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneCredential: %v", err)
		return credential.CreateOutput{}, err
	}
	if existing.ID != "" {
		return credential.CreateOutput{}, credential.ErrDuplicateName
	}

	created, err := uc.repo.CreateCredential(ctx, repo.CreateCredentialOptions{
		ID:          uuid.NewString(),
		CompanyID:   input.CompanyID,
		DisplayName: input.DisplayName,
		Secret:      input.Secret,
		Description: input.Description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateCredential: %v", err)
		return credential.CreateOutput{}, err
	}

	models := catalogModels(created.ID, time.Now().Add(uc.cfg.ResetWindow))
	if err := uc.repo.CreateModels(ctx, models); err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateModels: %v", err)
		return credential.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "credential %s created for company %s with %d models (secret %s)",
		created.ID, input.CompanyID, len(models), created.MaskedSecret())

	return credential.CreateOutput{
		Credential:    created,
		ModelsCreated: len(models),
	}, nil
}

// catalogModels builds the model rows for a fresh credential from the
// recommended catalog ordering.
func catalogModels(credentialID string, windowResetAt time.Time) []credential.Model {
	models := make([]credential.Model, len(gemini.Catalog))
	for i, info := range gemini.Catalog {
		models[i] = credential.Model{
			CredentialID:  credentialID,
			ModelID:       info.ID,
			Enabled:       true,
			Priority:      i + 1,
			QuotaLimit:    info.DefaultQuota,
			WindowResetAt: windowResetAt,
		}
	}
	return models
}
