package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/elhenawym124-ops/chatai-sub002/internal/credential"
	"github.com/elhenawym124-ops/chatai-sub002/internal/model"
	"github.com/elhenawym124-ops/chatai-sub002/internal/quota"
	"github.com/elhenawym124-ops/chatai-sub002/internal/routing"
	"github.com/elhenawym124-ops/chatai-sub002/internal/usage"
	"github.com/elhenawym124-ops/chatai-sub002/pkg/gemini"
)

// testMessage is the canned prompt sent by the admin key test.
const testMessage = "Hello! Reply with a short greeting."

// Route answers one end-user message across the tenant's full candidate
// list.
func (uc *implUseCase) Route(ctx context.Context, companyID string, input routing.RouteInput) (routing.RouteOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return routing.RouteOutput{}, routing.ErrEmptyMessage
	}

	candidates, err := uc.credentials.ListCandidates(ctx, companyID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Route ListCandidates: %v", err)
		return routing.RouteOutput{}, err
	}
	return uc.route(ctx, companyID, candidates, input.Message)
}

// TestCredential routes the canned message against one forced credential.
// Quota, circuit and usage accounting apply exactly as in normal routing.
func (uc *implUseCase) TestCredential(ctx context.Context, companyID, credentialID string) (routing.RouteOutput, error) {
	candidates, err := uc.credentials.GetCandidate(ctx, companyID, credentialID)
	if err != nil {
		return routing.RouteOutput{}, err
	}
	return uc.route(ctx, companyID, candidates, testMessage)
}

// route walks the candidate list in its given order. Each candidate is
// admitted against quota before a provider call; admitted attempts always
// release, in a defer, no matter how the call ends.
func (uc *implUseCase) route(ctx context.Context, companyID string, candidates []credential.Candidate, message string) (routing.RouteOutput, error) {
	instruction := uc.instruction(ctx, companyID)

	attempts := 0
	for _, c := range candidates {
		// Cancellation stops failover between candidates; it never skips
		// the release of an attempt already in flight.
		if err := ctx.Err(); err != nil {
			return routing.RouteOutput{}, err
		}

		admission := uc.tracker.TryAdmit(c)
		if !admission.Admitted {
			uc.l.Debugf(ctx, "candidate %s denied: %s", c.Key(), admission.Reason)
			if admission.Reason == quota.ReasonQuotaExhausted {
				uc.record(ctx, companyID, c, model.OutcomeQuotaExhausted, 0)
			}
			continue
		}

		attempts++
		out, ok := uc.attempt(ctx, companyID, c, instruction, message, attempts)
		if ok {
			return out, nil
		}
	}

	uc.l.Warnf(ctx, "routing exhausted for company %s: %d candidates, %d calls", companyID, len(candidates), attempts)
	return routing.RouteOutput{}, routing.ErrAllProvidersExhausted
}

// instruction asks the composer for the tenant's effective prompt. A
// composer failure degrades to routing without a system instruction
// rather than failing the message.
func (uc *implUseCase) instruction(ctx context.Context, companyID string) string {
	composed, err := uc.composer.Compose(ctx, companyID)
	if err != nil {
		uc.l.Warnf(ctx, "uc.route Compose failed, routing without instruction: %v", err)
		return ""
	}
	return composed.Instruction
}

// attempt makes one admitted provider call and settles it.
func (uc *implUseCase) attempt(ctx context.Context, companyID string, c credential.Candidate, instruction, message string, attempts int) (out routing.RouteOutput, ok bool) {
	outcome := model.OutcomeTransportError
	start := time.Now()

	defer func() {
		snapshot := uc.tracker.Release(c.CredentialID, c.ModelID, outcome)
		uc.settle(ctx, companyID, c, outcome, time.Since(start), snapshot)
	}()

	callCtx, cancel := context.WithTimeout(ctx, uc.cfg.CallTimeout)
	defer cancel()

	reply, err := uc.caller.Generate(callCtx, c.Secret, c.ModelID, instruction, message)
	if err != nil {
		outcome = classify(err)
		uc.l.Warnf(ctx, "provider call failed for %s (%s): %v", c.Key(), outcome, err)
		return routing.RouteOutput{}, false
	}

	outcome = model.OutcomeSuccess
	return routing.RouteOutput{
		Reply:        reply,
		CredentialID: c.CredentialID,
		ModelID:      c.ModelID,
		Attempts:     attempts,
		LatencyMs:    time.Since(start).Milliseconds(),
	}, true
}

// settle writes the usage record and mirrors the quota snapshot back to
// the model row. Both are write-behind: the route outcome is already
// decided, and the original context may be canceled.
func (uc *implUseCase) settle(ctx context.Context, companyID string, c credential.Candidate, outcome model.Outcome, latency time.Duration, snapshot quota.Snapshot) {
	ctx = context.WithoutCancel(ctx)

	uc.record(ctx, companyID, c, outcome, latency.Milliseconds())

	err := uc.credentials.SyncUsage(ctx, credential.SyncUsageInput{
		CredentialID:        c.CredentialID,
		ModelID:             c.ModelID,
		QuotaUsed:           snapshot.QuotaUsed,
		WindowResetAt:       snapshot.WindowResetAt,
		ConsecutiveFailures: snapshot.ConsecutiveFailures,
		MarkUsed:            outcome == model.OutcomeSuccess,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.settle SyncUsage for %s: %v", c.Key(), err)
	}
}

func (uc *implUseCase) record(ctx context.Context, companyID string, c credential.Candidate, outcome model.Outcome, latencyMs int64) {
	err := uc.usage.Record(ctx, usage.RecordInput{
		CompanyID:    companyID,
		CredentialID: c.CredentialID,
		ModelID:      c.ModelID,
		Outcome:      outcome,
		LatencyMs:    latencyMs,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.record usage for %s: %v", c.Key(), err)
	}
}

// classify maps a provider error onto a release outcome.
func classify(err error) model.Outcome {
	if errors.Is(err, gemini.ErrInvalidAPIKey) {
		return model.OutcomeInvalidCredential
	}
	return model.OutcomeTransportError
}
