package repository

import "time"

// CreateCredentialOptions holds parameters for inserting a Credential.
// Priority is assigned by the store as max(priority)+1 within the tenant.
type CreateCredentialOptions struct {
	ID          string
	CompanyID   string
	DisplayName string
	Secret      string
	Description string
}

// GetOneCredentialOptions holds filter parameters for fetching a single
// Credential. All non-empty fields are applied as AND conditions.
type GetOneCredentialOptions struct {
	ID          string
	CompanyID   string
	DisplayName string
}

// ListCandidatesOptions filters the candidate join.
type ListCandidatesOptions struct {
	CompanyID string
	// CredentialID, when set, restricts candidates to one credential
	// (used by the forced-candidate test route).
	CredentialID string
}

// UpdateModelUsageOptions carries counter state written back after routing.
type UpdateModelUsageOptions struct {
	CredentialID        string
	ModelID             string
	QuotaUsed           int
	WindowResetAt       time.Time
	ConsecutiveFailures int
	MarkUsed            bool
}
