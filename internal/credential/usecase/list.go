package usecase

import (
	"context"

	"github.com/elhenawym124-ops/chatai-sub002/internal/credential"
	"github.com/elhenawym124-ops/chatai-sub002/pkg/gemini"
)

// List returns the tenant's credentials with their model rows, for the
// admin listing. Secrets are left intact here; masking is a presentation
// concern.
func (uc *implUseCase) List(ctx context.Context, companyID string) ([]credential.WithModels, error) {
	credentials, err := uc.repo.ListCredentials(ctx, companyID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListCredentials: %v", err)
		return nil, err
	}

	out := make([]credential.WithModels, 0, len(credentials))
	for _, c := range credentials {
		models, err := uc.repo.ListModels(ctx, c.ID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.List ListModels: %v", err)
			return nil, err
		}
		out = append(out, credential.WithModels{Credential: c, Models: models})
	}
	return out, nil
}

// AvailableModels returns the static supported catalog.
func (uc *implUseCase) AvailableModels() []gemini.ModelInfo {
	return gemini.Catalog
}
