package usecase

import (
	"context"

	"github.com/elhenawym124-ops/chatai-sub002/internal/credential"
	repo "github.com/elhenawym124-ops/chatai-sub002/internal/credential/repository"
	"github.com/elhenawym124-ops/chatai-sub002/pkg/gemini"
)

// getOwned fetches a credential and enforces tenant ownership.
func (uc *implUseCase) getOwned(ctx context.Context, companyID, credentialID string) (credential.Credential, error) {
	c, err := uc.repo.GetOneCredential(ctx, repo.GetOneCredentialOptions{
		ID:        credentialID,
		CompanyID: companyID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getOwned GetOneCredential: %v", err)
		return credential.Credential{}, err
	}
	if c.ID == "" {
		return credential.Credential{}, credential.ErrNotFound
	}
	return c, nil
}

// ToggleCredential flips the credential's enabled flag. Idempotent with
// respect to registry state; quota counters are untouched.
func (uc *implUseCase) ToggleCredential(ctx context.Context, companyID, credentialID string) (credential.Credential, error) {
	c, err := uc.getOwned(ctx, companyID, credentialID)
	if err != nil {
		return credential.Credential{}, err
	}

	if err := uc.repo.SetCredentialEnabled(ctx, c.ID, !c.Enabled); err != nil {
		uc.l.Errorf(ctx, "uc.ToggleCredential SetCredentialEnabled: %v", err)
		return credential.Credential{}, err
	}

	c.Enabled = !c.Enabled
	return c, nil
}

// ToggleModel flips one model's enabled flag within a credential.
func (uc *implUseCase) ToggleModel(ctx context.Context, companyID, credentialID, modelID string) (credential.Model, error) {
	if _, err := uc.getOwned(ctx, companyID, credentialID); err != nil {
		return credential.Model{}, err
	}

	m, err := uc.repo.GetOneModel(ctx, credentialID, modelID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleModel GetOneModel: %v", err)
		return credential.Model{}, err
	}
	if m.CredentialID == "" {
		return credential.Model{}, credential.ErrModelNotFound
	}

	if err := uc.repo.SetModelEnabled(ctx, credentialID, modelID, !m.Enabled); err != nil {
		uc.l.Errorf(ctx, "uc.ToggleModel SetModelEnabled: %v", err)
		return credential.Model{}, err
	}

	m.Enabled = !m.Enabled
	return m, nil
}

// SetModel reassigns which model a legacy single-model credential points
// to: the named model is enabled, every other model on the credential is
// disabled.
func (uc *implUseCase) SetModel(ctx context.Context, companyID, credentialID, modelID string) error {
	if !gemini.IsSupported(modelID) {
		return credential.ErrUnsupportedModel
	}

	if _, err := uc.getOwned(ctx, companyID, credentialID); err != nil {
		return err
	}

	m, err := uc.repo.GetOneModel(ctx, credentialID, modelID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SetModel GetOneModel: %v", err)
		return err
	}
	if m.CredentialID == "" {
		return credential.ErrModelNotFound
	}

	if err := uc.repo.SetExclusiveModel(ctx, credentialID, modelID); err != nil {
		uc.l.Errorf(ctx, "uc.SetModel SetExclusiveModel: %v", err)
		return err
	}
	return nil
}

// Delete removes a credential and (via cascade) its model rows.
func (uc *implUseCase) Delete(ctx context.Context, companyID, credentialID string) error {
	if _, err := uc.getOwned(ctx, companyID, credentialID); err != nil {
		return err
	}

	if err := uc.repo.DeleteCredential(ctx, credentialID); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteCredential: %v", err)
		return err
	}
	return nil
}
