package quota

import (
	"sync"
	"time"

	"github.com/elhenawym124-ops/chatai-sub002/internal/credential"
	"github.com/elhenawym124-ops/chatai-sub002/internal/model"
)

// Reason explains a denied admission.
type Reason string

const (
	ReasonQuotaExhausted Reason = "quota_exhausted"
	ReasonCircuitOpen    Reason = "circuit_open"
)

// Snapshot is a point-in-time copy of a pair's counters, handed back so
// callers can persist them without reaching into tracker internals.
type Snapshot struct {
	QuotaUsed           int
	WindowResetAt       time.Time
	ConsecutiveFailures int
}

// Admission is the result of TryAdmit. When Admitted is false, Reason
// says why and the caller must not issue a Release for this attempt.
type Admission struct {
	Admitted bool
	Reason   Reason
	Snapshot Snapshot
}

// Config tunes quota windows and the per-pair circuit breaker.
type Config struct {
	ResetWindow      time.Duration
	FailureThreshold int
	CircuitCooldown  time.Duration
}

// pairState holds live counters for one (credential, model) pair. Each
// pair has its own mutex so contention on hot keys never blocks others.
type pairState struct {
	mu                  sync.Mutex
	limit               int
	used                int
	windowResetAt       time.Time
	consecutiveFailures int
	circuitOpenUntil    time.Time
}

func (s *pairState) snapshot() Snapshot {
	return Snapshot{
		QuotaUsed:           s.used,
		WindowResetAt:       s.windowResetAt,
		ConsecutiveFailures: s.consecutiveFailures,
	}
}

// Tracker is the in-memory quota authority. Counters are seeded lazily
// from candidate rows on first sight of a pair and stay authoritative for
// the process lifetime; the store is only a write-behind mirror.
type Tracker struct {
	cfg Config

	mu    sync.Mutex
	pairs map[string]*pairState

	now func() time.Time
}

// NewTracker creates a Tracker with sane defaults for any unset config.
func NewTracker(cfg Config) *Tracker {
	if cfg.ResetWindow <= 0 {
		cfg.ResetWindow = 24 * time.Hour
	}
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 3
	}
	if cfg.CircuitCooldown <= 0 {
		cfg.CircuitCooldown = 5 * time.Minute
	}
	return &Tracker{
		cfg:   cfg,
		pairs: make(map[string]*pairState),
		now:   time.Now,
	}
}

// pair returns the live state for a candidate, seeding it from the row
// on first sight.
func (t *Tracker) pair(c credential.Candidate) *pairState {
	t.mu.Lock()
	defer t.mu.Unlock()

	st, ok := t.pairs[c.Key()]
	if !ok {
		st = &pairState{
			limit:               c.QuotaLimit,
			used:                c.QuotaUsed,
			windowResetAt:       c.WindowResetAt,
			consecutiveFailures: c.ConsecutiveFailures,
		}
		t.pairs[c.Key()] = st
	}
	return st
}

// TryAdmit checks the pair's window and circuit, then reserves one quota
// slot. The check and the increment happen under the pair mutex, so the
// window can never be oversubscribed regardless of concurrency. Every
// admitted attempt must be paired with exactly one Release.
func (t *Tracker) TryAdmit(c credential.Candidate) Admission {
	st := t.pair(c)

	st.mu.Lock()
	defer st.mu.Unlock()

	now := t.now()

	// Admin edits to the limit take effect on the next admission.
	st.limit = c.QuotaLimit

	// Lazy window reset: nothing ticks in the background, expiry is
	// observed at admission time.
	if !st.windowResetAt.After(now) {
		st.used = 0
		st.windowResetAt = now.Add(t.cfg.ResetWindow)
	}

	if st.consecutiveFailures >= t.cfg.FailureThreshold {
		if now.Before(st.circuitOpenUntil) {
			return Admission{Reason: ReasonCircuitOpen, Snapshot: st.snapshot()}
		}
		// Cooldown elapsed: let one trial request through. A failed
		// trial re-opens the circuit in Release.
	}

	if st.used >= st.limit {
		return Admission{Reason: ReasonQuotaExhausted, Snapshot: st.snapshot()}
	}

	st.used++
	return Admission{Admitted: true, Snapshot: st.snapshot()}
}

// Release settles an admitted attempt. Success keeps the reserved slot
// and clears the failure streak. Refundable outcomes give the slot back
// and bump the streak, opening the circuit once the threshold is hit.
// The returned Snapshot is what callers persist.
func (t *Tracker) Release(credentialID, modelID string, outcome model.Outcome) Snapshot {
	t.mu.Lock()
	st, ok := t.pairs[credentialID+":"+modelID]
	t.mu.Unlock()
	if !ok {
		return Snapshot{}
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	switch {
	case outcome == model.OutcomeSuccess:
		st.consecutiveFailures = 0
	case outcome.Refundable():
		if st.used > 0 {
			st.used--
		}
		st.consecutiveFailures++
		if st.consecutiveFailures >= t.cfg.FailureThreshold {
			st.circuitOpenUntil = t.now().Add(t.cfg.CircuitCooldown)
		}
	}
	return st.snapshot()
}

// Peek returns the current counters for a pair without touching them.
// Used by admin listings that want live numbers instead of the stale
// store mirror.
func (t *Tracker) Peek(credentialID, modelID string) (Snapshot, bool) {
	t.mu.Lock()
	st, ok := t.pairs[credentialID+":"+modelID]
	t.mu.Unlock()
	if !ok {
		return Snapshot{}, false
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	return st.snapshot(), true
}
