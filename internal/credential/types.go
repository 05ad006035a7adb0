package credential

import (
	"strings"
	"time"
)

// --- Domain entities ---

// Credential is a tenant-owned provider API key. One credential backs the
// full model catalog; per-model state lives on Model rows.
type Credential struct {
	ID          string
	CompanyID   string
	DisplayName string
	Secret      string
	Description string
	Enabled     bool
	Priority    int // lower = tried first
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MaskedSecret renders the secret for listings and logs: only the last
// four characters survive.
func (c Credential) MaskedSecret() string {
	return MaskSecret(c.Secret)
}

// MaskSecret hides all but the last four characters of a secret.
func MaskSecret(secret string) string {
	if len(secret) <= 4 {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", len(secret)-4) + secret[len(secret)-4:]
}

// Model is one provider model reachable through a credential, with its own
// quota window and failure history.
type Model struct {
	CredentialID        string
	ModelID             string
	Enabled             bool
	Priority            int // tie-break within a credential
	QuotaLimit          int
	QuotaUsed           int
	WindowResetAt       time.Time
	LastUsedAt          time.Time
	ConsecutiveFailures int
}

// Candidate is an ephemeral (credential, model) pair considered for one
// routing attempt. Never persisted; recomputed per request.
type Candidate struct {
	CredentialID        string
	Secret              string
	ModelID             string
	CredentialPriority  int
	ModelPriority       int
	QuotaLimit          int
	QuotaUsed           int
	WindowResetAt       time.Time
	ConsecutiveFailures int
}

// Key identifies the (credential, model) pair across quota accounting and
// usage records.
func (c Candidate) Key() string {
	return c.CredentialID + ":" + c.ModelID
}

// AvailableQuota is the remaining request budget in the current window.
func (c Candidate) AvailableQuota() int {
	if c.QuotaUsed >= c.QuotaLimit {
		return 0
	}
	return c.QuotaLimit - c.QuotaUsed
}

// --- UseCase inputs/outputs ---

type CreateInput struct {
	CompanyID   string
	DisplayName string
	Secret      string
	Description string
}

type CreateOutput struct {
	Credential    Credential
	ModelsCreated int
}

// WithModels pairs a credential with its model rows for admin listings.
type WithModels struct {
	Credential Credential
	Models     []Model
}

// SyncUsageInput carries post-routing counter state back to the store.
type SyncUsageInput struct {
	CredentialID        string
	ModelID             string
	QuotaUsed           int
	WindowResetAt       time.Time
	ConsecutiveFailures int
	MarkUsed            bool
}
