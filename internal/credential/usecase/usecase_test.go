package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/elhenawym124-ops/chatai-sub002/internal/credential"
	repo "github.com/elhenawym124-ops/chatai-sub002/internal/credential/repository"
	"github.com/elhenawym124-ops/chatai-sub002/pkg/gemini"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                 {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Info(ctx context.Context, args ...any)                  {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, args ...any)                  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, args ...any)                 {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                {}
func (nopLogger) DPanicf(ctx context.Context, format string, args ...any) {
}
func (nopLogger) Panic(ctx context.Context, args ...any)                 {}
func (nopLogger) Panicf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                 {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any) {}

// mockRepository is a hand-written in-memory credential store.
type mockRepository struct {
	credentials []credential.Credential
	models      []credential.Model
	candidates  []credential.Candidate

	createdModels   []credential.Model
	usageUpdates    []repo.UpdateModelUsageOptions
	candidateOpts   []repo.ListCandidatesOptions
	deletedIDs      []string
	enabledSets     map[string]bool
	exclusiveModels []string

	err error
}

func newMockRepository() *mockRepository {
	return &mockRepository{enabledSets: map[string]bool{}}
}

func (m *mockRepository) CreateCredential(_ context.Context, opt repo.CreateCredentialOptions) (credential.Credential, error) {
	if m.err != nil {
		return credential.Credential{}, m.err
	}
	c := credential.Credential{
		ID:          opt.ID,
		CompanyID:   opt.CompanyID,
		DisplayName: opt.DisplayName,
		Secret:      opt.Secret,
		Description: opt.Description,
		Enabled:     true,
		Priority:    len(m.credentials) + 1,
	}
	m.credentials = append(m.credentials, c)
	return c, nil
}

func (m *mockRepository) GetOneCredential(_ context.Context, opt repo.GetOneCredentialOptions) (credential.Credential, error) {
	if m.err != nil {
		return credential.Credential{}, m.err
	}
	for _, c := range m.credentials {
		if opt.ID != "" && c.ID != opt.ID {
			continue
		}
		if opt.CompanyID != "" && c.CompanyID != opt.CompanyID {
			continue
		}
		if opt.DisplayName != "" && c.DisplayName != opt.DisplayName {
			continue
		}
		return c, nil
	}
	return credential.Credential{}, nil
}

func (m *mockRepository) ListCredentials(_ context.Context, companyID string) ([]credential.Credential, error) {
	var out []credential.Credential
	for _, c := range m.credentials {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockRepository) SetCredentialEnabled(_ context.Context, credentialID string, enabled bool) error {
	m.enabledSets["cred:"+credentialID] = enabled
	return nil
}

func (m *mockRepository) DeleteCredential(_ context.Context, credentialID string) error {
	m.deletedIDs = append(m.deletedIDs, credentialID)
	return nil
}

func (m *mockRepository) CreateModels(_ context.Context, models []credential.Model) error {
	if m.err != nil {
		return m.err
	}
	m.createdModels = append(m.createdModels, models...)
	return nil
}

func (m *mockRepository) ListModels(_ context.Context, credentialID string) ([]credential.Model, error) {
	var out []credential.Model
	for _, mm := range m.models {
		if mm.CredentialID == credentialID {
			out = append(out, mm)
		}
	}
	return out, nil
}

func (m *mockRepository) GetOneModel(_ context.Context, credentialID, modelID string) (credential.Model, error) {
	for _, mm := range m.models {
		if mm.CredentialID == credentialID && mm.ModelID == modelID {
			return mm, nil
		}
	}
	return credential.Model{}, nil
}

func (m *mockRepository) SetModelEnabled(_ context.Context, credentialID, modelID string, enabled bool) error {
	m.enabledSets["model:"+credentialID+":"+modelID] = enabled
	return nil
}

func (m *mockRepository) SetExclusiveModel(_ context.Context, credentialID, modelID string) error {
	m.exclusiveModels = append(m.exclusiveModels, credentialID+":"+modelID)
	return nil
}

func (m *mockRepository) UpdateModelUsage(_ context.Context, opt repo.UpdateModelUsageOptions) error {
	if m.err != nil {
		return m.err
	}
	m.usageUpdates = append(m.usageUpdates, opt)
	return nil
}

func (m *mockRepository) ListCandidates(_ context.Context, opt repo.ListCandidatesOptions) ([]credential.Candidate, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.candidateOpts = append(m.candidateOpts, opt)
	if opt.CredentialID == "" {
		return m.candidates, nil
	}
	var out []credential.Candidate
	for _, c := range m.candidates {
		if c.CredentialID == opt.CredentialID {
			out = append(out, c)
		}
	}
	return out, nil
}

func newTestUseCase(r repo.Repository) *implUseCase {
	return New(r, Config{ResetWindow: 24 * time.Hour}, nopLogger{})
}

func TestCreatePopulatesCatalog(t *testing.T) {
	m := newMockRepository()
	uc := newTestUseCase(m)

	out, err := uc.Create(context.Background(), credential.CreateInput{
		CompanyID:   "co-1",
		DisplayName: "primary key",
		Secret:      "AIzaSyTESTKEY1234",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if out.ModelsCreated != len(gemini.Catalog) {
		t.Fatalf("ModelsCreated = %d, want %d", out.ModelsCreated, len(gemini.Catalog))
	}
	if len(m.createdModels) != len(gemini.Catalog) {
		t.Fatalf("created %d model rows, want %d", len(m.createdModels), len(gemini.Catalog))
	}
	for i, mm := range m.createdModels {
		if mm.Priority != i+1 {
			t.Errorf("model %s priority = %d, want %d", mm.ModelID, mm.Priority, i+1)
		}
		if !mm.Enabled {
			t.Errorf("model %s should start enabled", mm.ModelID)
		}
		if mm.QuotaLimit <= 0 {
			t.Errorf("model %s has no default quota", mm.ModelID)
		}
	}
}

func TestCreateValidation(t *testing.T) {
	uc := newTestUseCase(newMockRepository())

	_, err := uc.Create(context.Background(), credential.CreateInput{CompanyID: "co-1", DisplayName: "k"})
	if !errors.Is(err, credential.ErrEmptySecret) {
		t.Fatalf("empty secret: got %v, want ErrEmptySecret", err)
	}

	_, err = uc.Create(context.Background(), credential.CreateInput{CompanyID: "co-1", Secret: "s3cret-value", DisplayName: "  "})
	if !errors.Is(err, credential.ErrEmptyName) {
		t.Fatalf("empty name: got %v, want ErrEmptyName", err)
	}
}

func TestCreateDuplicateName(t *testing.T) {
	m := newMockRepository()
	m.credentials = []credential.Credential{{ID: "c-1", CompanyID: "co-1", DisplayName: "primary key"}}
	uc := newTestUseCase(m)

	_, err := uc.Create(context.Background(), credential.CreateInput{
		CompanyID:   "co-1",
		DisplayName: "primary key",
		Secret:      "AIzaSyTESTKEY1234",
	})
	if !errors.Is(err, credential.ErrDuplicateName) {
		t.Fatalf("got %v, want ErrDuplicateName", err)
	}
}

func TestToggleCredentialOwnership(t *testing.T) {
	m := newMockRepository()
	m.credentials = []credential.Credential{{ID: "c-1", CompanyID: "co-1", Enabled: true}}
	uc := newTestUseCase(m)

	_, err := uc.ToggleCredential(context.Background(), "co-2", "c-1")
	if !errors.Is(err, credential.ErrNotFound) {
		t.Fatalf("cross-tenant toggle: got %v, want ErrNotFound", err)
	}

	c, err := uc.ToggleCredential(context.Background(), "co-1", "c-1")
	if err != nil {
		t.Fatalf("ToggleCredential: %v", err)
	}
	if c.Enabled {
		t.Fatal("credential should be disabled after toggle")
	}
	if got := m.enabledSets["cred:c-1"]; got {
		t.Fatal("store should record enabled=false")
	}
}

func TestSetModelExclusive(t *testing.T) {
	m := newMockRepository()
	m.credentials = []credential.Credential{{ID: "c-1", CompanyID: "co-1"}}
	m.models = []credential.Model{{CredentialID: "c-1", ModelID: "gemini-2.5-flash", Enabled: true}}
	uc := newTestUseCase(m)

	if err := uc.SetModel(context.Background(), "co-1", "c-1", "not-a-model"); !errors.Is(err, credential.ErrUnsupportedModel) {
		t.Fatalf("unsupported model: got %v, want ErrUnsupportedModel", err)
	}

	if err := uc.SetModel(context.Background(), "co-1", "c-1", "gemini-2.5-flash"); err != nil {
		t.Fatalf("SetModel: %v", err)
	}
	if len(m.exclusiveModels) != 1 || m.exclusiveModels[0] != "c-1:gemini-2.5-flash" {
		t.Fatalf("exclusive set = %v", m.exclusiveModels)
	}
}

func TestGetCandidateScopedToCredential(t *testing.T) {
	m := newMockRepository()
	m.credentials = []credential.Credential{{ID: "c-1", CompanyID: "co-1"}, {ID: "c-2", CompanyID: "co-1"}}
	m.candidates = []credential.Candidate{
		{CredentialID: "c-1", ModelID: "gemini-2.5-flash"},
		{CredentialID: "c-2", ModelID: "gemini-2.5-flash"},
	}
	uc := newTestUseCase(m)

	got, err := uc.GetCandidate(context.Background(), "co-1", "c-2")
	if err != nil {
		t.Fatalf("GetCandidate: %v", err)
	}
	if len(got) != 1 || got[0].CredentialID != "c-2" {
		t.Fatalf("candidates = %+v, want only c-2", got)
	}

	if _, err := uc.GetCandidate(context.Background(), "co-2", "c-1"); !errors.Is(err, credential.ErrNotFound) {
		t.Fatalf("cross-tenant: got %v, want ErrNotFound", err)
	}
}

func TestSyncUsageWritesThrough(t *testing.T) {
	m := newMockRepository()
	uc := newTestUseCase(m)

	reset := time.Now().Add(24 * time.Hour)
	err := uc.SyncUsage(context.Background(), credential.SyncUsageInput{
		CredentialID:        "c-1",
		ModelID:             "gemini-2.5-flash",
		QuotaUsed:           17,
		WindowResetAt:       reset,
		ConsecutiveFailures: 2,
		MarkUsed:            true,
	})
	if err != nil {
		t.Fatalf("SyncUsage: %v", err)
	}
	if len(m.usageUpdates) != 1 {
		t.Fatalf("usage updates = %d, want 1", len(m.usageUpdates))
	}
	up := m.usageUpdates[0]
	if up.QuotaUsed != 17 || up.ConsecutiveFailures != 2 || !up.MarkUsed || !up.WindowResetAt.Equal(reset) {
		t.Fatalf("unexpected update: %+v", up)
	}
}

func TestMaskSecret(t *testing.T) {
	if got := credential.MaskSecret("AIzaSyABC123XYZ9"); got != "************XYZ9" {
		t.Fatalf("MaskSecret = %q", got)
	}
	if got := credential.MaskSecret("abcd"); got != "****" {
		t.Fatalf("short secret MaskSecret = %q", got)
	}
}
