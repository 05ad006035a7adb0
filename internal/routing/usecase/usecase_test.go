package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/elhenawym124-ops/chatai-sub002/internal/credential"
	"github.com/elhenawym124-ops/chatai-sub002/internal/model"
	"github.com/elhenawym124-ops/chatai-sub002/internal/prompt"
	"github.com/elhenawym124-ops/chatai-sub002/internal/quota"
	"github.com/elhenawym124-ops/chatai-sub002/internal/routing"
	"github.com/elhenawym124-ops/chatai-sub002/internal/usage"
	"github.com/elhenawym124-ops/chatai-sub002/pkg/gemini"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                  {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                   {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                   {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (nopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                  {}
func (nopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockCredentials serves candidates and records sync calls. The admin
// lifecycle methods are unused by the router.
type mockCredentials struct {
	candidates []credential.Candidate
	syncs      []credential.SyncUsageInput
	err        error
}

func (m *mockCredentials) Create(context.Context, credential.CreateInput) (credential.CreateOutput, error) {
	panic("not used")
}
func (m *mockCredentials) List(context.Context, string) ([]credential.WithModels, error) {
	panic("not used")
}
func (m *mockCredentials) ToggleCredential(context.Context, string, string) (credential.Credential, error) {
	panic("not used")
}
func (m *mockCredentials) ToggleModel(context.Context, string, string, string) (credential.Model, error) {
	panic("not used")
}
func (m *mockCredentials) SetModel(context.Context, string, string, string) error {
	panic("not used")
}
func (m *mockCredentials) Delete(context.Context, string, string) error {
	panic("not used")
}
func (m *mockCredentials) AvailableModels() []gemini.ModelInfo {
	panic("not used")
}

func (m *mockCredentials) ListCandidates(_ context.Context, _ string) ([]credential.Candidate, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.candidates, nil
}

func (m *mockCredentials) GetCandidate(_ context.Context, _ string, credentialID string) ([]credential.Candidate, error) {
	var out []credential.Candidate
	for _, c := range m.candidates {
		if c.CredentialID == credentialID {
			out = append(out, c)
		}
	}
	if out == nil {
		return nil, credential.ErrNotFound
	}
	return out, nil
}

func (m *mockCredentials) SyncUsage(_ context.Context, input credential.SyncUsageInput) error {
	m.syncs = append(m.syncs, input)
	return nil
}

type mockComposer struct {
	instruction string
	err         error
}

func (m *mockComposer) Compose(context.Context, string) (prompt.ComposeOutput, error) {
	if m.err != nil {
		return prompt.ComposeOutput{}, m.err
	}
	return prompt.ComposeOutput{Instruction: m.instruction}, nil
}
func (m *mockComposer) GetPrompts(context.Context, string) (prompt.PromptSet, error) {
	panic("not used")
}
func (m *mockComposer) UpdatePrompts(context.Context, prompt.UpdatePromptsInput) (prompt.PromptSet, error) {
	panic("not used")
}
func (m *mockComposer) GetSettings(context.Context, string) (prompt.PrioritySettings, error) {
	panic("not used")
}
func (m *mockComposer) UpdateSettings(context.Context, prompt.UpdateSettingsInput) (prompt.PrioritySettings, error) {
	panic("not used")
}
func (m *mockComposer) TestConflict(context.Context, prompt.TestConflictInput) (prompt.Report, error) {
	panic("not used")
}

type mockUsage struct {
	records []usage.RecordInput
}

func (m *mockUsage) Record(_ context.Context, input usage.RecordInput) error {
	m.records = append(m.records, input)
	return nil
}
func (m *mockUsage) Stats(context.Context, string, usage.Period) (usage.Stats, error) {
	panic("not used")
}

// call logs one provider invocation for order assertions.
type call struct {
	apiKey string
	model  string
	system string
}

type mockCaller struct {
	calls []call
	// errFor maps "credID:modelID" to a forced error; pairs absent from
	// the map succeed.
	errFor map[string]error
	// keyFor recovers the pair key from the api key in tests.
	keyFor map[string]string
}

func (m *mockCaller) Generate(_ context.Context, apiKey, modelID, system, _ string) (string, error) {
	m.calls = append(m.calls, call{apiKey: apiKey, model: modelID, system: system})
	if err, ok := m.errFor[m.keyFor[apiKey]+":"+modelID]; ok && err != nil {
		return "", err
	}
	return "mock reply", nil
}

func cand(credID, modelID string, credPrio, modelPrio, limit, used int) credential.Candidate {
	return credential.Candidate{
		CredentialID:       credID,
		Secret:             "key-" + credID,
		ModelID:            modelID,
		CredentialPriority: credPrio,
		ModelPriority:      modelPrio,
		QuotaLimit:         limit,
		QuotaUsed:          used,
		WindowResetAt:      time.Now().Add(time.Hour),
	}
}

type fixture struct {
	uc     *implUseCase
	creds  *mockCredentials
	caller *mockCaller
	usage  *mockUsage
}

func newFixture(candidates []credential.Candidate, errFor map[string]error) *fixture {
	creds := &mockCredentials{candidates: candidates}
	caller := &mockCaller{errFor: errFor, keyFor: map[string]string{}}
	for _, c := range candidates {
		caller.keyFor[c.Secret] = c.CredentialID
	}
	u := &mockUsage{}
	uc := New(
		creds,
		&mockComposer{instruction: "Be helpful."},
		u,
		quota.NewTracker(quota.Config{}),
		caller,
		Config{CallTimeout: time.Second},
		nopLogger{},
	)
	return &fixture{uc: uc, creds: creds, caller: caller, usage: u}
}

func TestRouteUsesFirstCandidate(t *testing.T) {
	f := newFixture([]credential.Candidate{
		cand("c-1", "gemini-2.5-flash", 1, 1, 10, 0),
		cand("c-1", "gemini-2.5-pro", 1, 2, 10, 0),
		cand("c-2", "gemini-2.5-flash", 2, 1, 10, 0),
	}, nil)

	out, err := f.uc.Route(context.Background(), "co-1", routing.RouteInput{Message: "hi"})
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if out.CredentialID != "c-1" || out.ModelID != "gemini-2.5-flash" {
		t.Fatalf("routed to %s/%s, want c-1/gemini-2.5-flash", out.CredentialID, out.ModelID)
	}
	if out.Reply != "mock reply" || out.Attempts != 1 {
		t.Fatalf("output = %+v", out)
	}
	if len(f.caller.calls) != 1 {
		t.Fatalf("provider calls = %d, want 1", len(f.caller.calls))
	}
	if f.caller.calls[0].system != "Be helpful." {
		t.Fatalf("instruction = %q", f.caller.calls[0].system)
	}
}

func TestRouteFailsOverInOrder(t *testing.T) {
	f := newFixture([]credential.Candidate{
		cand("c-1", "gemini-2.5-flash", 1, 1, 10, 0),
		cand("c-1", "gemini-2.5-pro", 1, 2, 10, 0),
		cand("c-2", "gemini-2.5-flash", 2, 1, 10, 0),
	}, map[string]error{
		"c-1:gemini-2.5-flash": errors.New("boom"),
		"c-1:gemini-2.5-pro":   gemini.ErrInvalidAPIKey,
	})

	out, err := f.uc.Route(context.Background(), "co-1", routing.RouteInput{Message: "hi"})
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if out.CredentialID != "c-2" || out.Attempts != 3 {
		t.Fatalf("output = %+v, want success on c-2 after 3 attempts", out)
	}

	if len(f.usage.records) != 3 {
		t.Fatalf("usage records = %d, want 3", len(f.usage.records))
	}
	wantOutcomes := []model.Outcome{
		model.OutcomeTransportError,
		model.OutcomeInvalidCredential,
		model.OutcomeSuccess,
	}
	for i, want := range wantOutcomes {
		if f.usage.records[i].Outcome != want {
			t.Errorf("record %d outcome = %s, want %s", i, f.usage.records[i].Outcome, want)
		}
	}
}

func TestRouteSkipsExhaustedQuota(t *testing.T) {
	// First candidate is already out of quota: it must be skipped without
	// a provider call, and the second one serves the request.
	f := newFixture([]credential.Candidate{
		cand("c-1", "gemini-2.5-flash", 1, 1, 1, 1),
		cand("c-2", "gemini-2.5-flash", 2, 1, 10, 0),
	}, nil)

	out, err := f.uc.Route(context.Background(), "co-1", routing.RouteInput{Message: "hi"})
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if out.CredentialID != "c-2" {
		t.Fatalf("routed to %s, want c-2", out.CredentialID)
	}
	if len(f.caller.calls) != 1 {
		t.Fatalf("provider calls = %d, want 1 (exhausted pair must not be called)", len(f.caller.calls))
	}

	// The denial is still visible in the audit trail.
	if len(f.usage.records) != 2 || f.usage.records[0].Outcome != model.OutcomeQuotaExhausted {
		t.Fatalf("records = %+v, want quota_exhausted then success", f.usage.records)
	}
}

func TestRouteAllExhaustedNoCalls(t *testing.T) {
	f := newFixture([]credential.Candidate{
		cand("c-1", "gemini-2.5-flash", 1, 1, 5, 5),
		cand("c-2", "gemini-2.5-flash", 2, 1, 3, 3),
	}, nil)

	_, err := f.uc.Route(context.Background(), "co-1", routing.RouteInput{Message: "hi"})
	if !errors.Is(err, routing.ErrAllProvidersExhausted) {
		t.Fatalf("got %v, want ErrAllProvidersExhausted", err)
	}
	if len(f.caller.calls) != 0 {
		t.Fatalf("provider calls = %d, want 0", len(f.caller.calls))
	}
}

func TestRouteNoCandidates(t *testing.T) {
	f := newFixture(nil, nil)

	_, err := f.uc.Route(context.Background(), "co-1", routing.RouteInput{Message: "hi"})
	if !errors.Is(err, routing.ErrAllProvidersExhausted) {
		t.Fatalf("got %v, want ErrAllProvidersExhausted", err)
	}
}

func TestRouteEmptyMessage(t *testing.T) {
	f := newFixture(nil, nil)

	_, err := f.uc.Route(context.Background(), "co-1", routing.RouteInput{Message: "   "})
	if !errors.Is(err, routing.ErrEmptyMessage) {
		t.Fatalf("got %v, want ErrEmptyMessage", err)
	}
}

func TestRouteFailureReleasesQuota(t *testing.T) {
	// A failed call refunds its slot: a limit of 1 still admits the retry
	// on the next route.
	f := newFixture([]credential.Candidate{
		cand("c-1", "gemini-2.5-flash", 1, 1, 1, 0),
	}, map[string]error{"c-1:gemini-2.5-flash": errors.New("boom")})

	if _, err := f.uc.Route(context.Background(), "co-1", routing.RouteInput{Message: "hi"}); !errors.Is(err, routing.ErrAllProvidersExhausted) {
		t.Fatalf("first route: %v", err)
	}

	f.caller.errFor = nil
	out, err := f.uc.Route(context.Background(), "co-1", routing.RouteInput{Message: "hi"})
	if err != nil {
		t.Fatalf("second route: %v", err)
	}
	if out.CredentialID != "c-1" {
		t.Fatalf("routed to %s", out.CredentialID)
	}
}

func TestRouteCancellationStopsFailover(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := newFixture([]credential.Candidate{
		cand("c-1", "gemini-2.5-flash", 1, 1, 10, 0),
		cand("c-2", "gemini-2.5-flash", 2, 1, 10, 0),
	}, nil)

	_, err := f.uc.Route(ctx, "co-1", routing.RouteInput{Message: "hi"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
	if len(f.caller.calls) != 0 {
		t.Fatalf("provider calls = %d, want 0 after cancellation", len(f.caller.calls))
	}

	// Nothing was admitted, so quota is untouched and the next route
	// still lands on the first candidate.
	out, err := f.uc.Route(context.Background(), "co-1", routing.RouteInput{Message: "hi"})
	if err != nil || out.CredentialID != "c-1" {
		t.Fatalf("route after cancel = %+v, %v", out, err)
	}
}

func TestRouteSyncsUsageWriteBehind(t *testing.T) {
	f := newFixture([]credential.Candidate{
		cand("c-1", "gemini-2.5-flash", 1, 1, 10, 0),
	}, nil)

	if _, err := f.uc.Route(context.Background(), "co-1", routing.RouteInput{Message: "hi"}); err != nil {
		t.Fatalf("Route: %v", err)
	}
	if len(f.creds.syncs) != 1 {
		t.Fatalf("syncs = %d, want 1", len(f.creds.syncs))
	}
	s := f.creds.syncs[0]
	if s.QuotaUsed != 1 || !s.MarkUsed || s.ConsecutiveFailures != 0 {
		t.Fatalf("sync = %+v", s)
	}
}

func TestRouteComposerFailureDegrades(t *testing.T) {
	f := newFixture([]credential.Candidate{
		cand("c-1", "gemini-2.5-flash", 1, 1, 10, 0),
	}, nil)
	f.uc.composer = &mockComposer{err: errors.New("patterns store down")}

	out, err := f.uc.Route(context.Background(), "co-1", routing.RouteInput{Message: "hi"})
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if out.Reply != "mock reply" {
		t.Fatalf("reply = %q", out.Reply)
	}
	if f.caller.calls[0].system != "" {
		t.Fatalf("instruction = %q, want empty on composer failure", f.caller.calls[0].system)
	}
}

func TestTestCredentialForcesSingleCredential(t *testing.T) {
	f := newFixture([]credential.Candidate{
		cand("c-1", "gemini-2.5-flash", 1, 1, 10, 0),
		cand("c-2", "gemini-2.5-flash", 2, 1, 10, 0),
		cand("c-2", "gemini-2.5-pro", 2, 2, 10, 0),
	}, map[string]error{"c-2:gemini-2.5-flash": errors.New("boom")})

	out, err := f.uc.TestCredential(context.Background(), "co-1", "c-2")
	if err != nil {
		t.Fatalf("TestCredential: %v", err)
	}
	if out.CredentialID != "c-2" || out.ModelID != "gemini-2.5-pro" {
		t.Fatalf("output = %+v, want failover within c-2 only", out)
	}
	for _, call := range f.caller.calls {
		if call.apiKey != "key-c-2" {
			t.Fatalf("call leaked to credential with key %s", call.apiKey)
		}
	}

	if _, err := f.uc.TestCredential(context.Background(), "co-1", "c-9"); !errors.Is(err, credential.ErrNotFound) {
		t.Fatalf("unknown credential: got %v, want ErrNotFound", err)
	}
}

func TestRouteDeterministicAcrossRuns(t *testing.T) {
	for i := 0; i < 10; i++ {
		f := newFixture([]credential.Candidate{
			cand("c-1", "gemini-2.5-flash", 1, 1, 10, 0),
			cand("c-2", "gemini-2.5-flash", 2, 1, 10, 0),
		}, nil)
		out, err := f.uc.Route(context.Background(), "co-1", routing.RouteInput{Message: "hi"})
		if err != nil || out.CredentialID != "c-1" {
			t.Fatalf("run %d routed to %s (%v), want c-1", i, out.CredentialID, err)
		}
	}
}
