package usecase

import (
	"context"

	"github.com/elhenawym124-ops/chatai-sub002/internal/credential"
	repo "github.com/elhenawym124-ops/chatai-sub002/internal/credential/repository"
)

// ListCandidates returns the tenant's routing candidates: enabled
// credentials × enabled models in (credential.priority, model.priority)
// order. The order is total and deterministic — operators reason about
// "which key gets used first" from it.
func (uc *implUseCase) ListCandidates(ctx context.Context, companyID string) ([]credential.Candidate, error) {
	candidates, err := uc.repo.ListCandidates(ctx, repo.ListCandidatesOptions{CompanyID: companyID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListCandidates: %v", err)
		return nil, err
	}
	return candidates, nil
}

// GetCandidate restricts the candidate list to one credential — the
// forced-candidate path behind the key test endpoint.
func (uc *implUseCase) GetCandidate(ctx context.Context, companyID, credentialID string) ([]credential.Candidate, error) {
	if _, err := uc.getOwned(ctx, companyID, credentialID); err != nil {
		return nil, err
	}

	candidates, err := uc.repo.ListCandidates(ctx, repo.ListCandidatesOptions{
		CompanyID:    companyID,
		CredentialID: credentialID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetCandidate: %v", err)
		return nil, err
	}
	return candidates, nil
}

// SyncUsage persists routing-time counter state back onto the model row.
// Write-behind: the in-memory quota tracker stays authoritative during the
// process lifetime, this keeps restarts from forgetting spent quota.
func (uc *implUseCase) SyncUsage(ctx context.Context, input credential.SyncUsageInput) error {
	err := uc.repo.UpdateModelUsage(ctx, repo.UpdateModelUsageOptions{
		CredentialID:        input.CredentialID,
		ModelID:             input.ModelID,
		QuotaUsed:           input.QuotaUsed,
		WindowResetAt:       input.WindowResetAt,
		ConsecutiveFailures: input.ConsecutiveFailures,
		MarkUsed:            input.MarkUsed,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SyncUsage UpdateModelUsage: %v", err)
		return err
	}
	return nil
}
