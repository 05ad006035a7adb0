package model

// Outcome classifies the result of a single provider attempt. Outcomes
// drive quota release semantics and are persisted on usage records.
type Outcome string

const (
	OutcomeSuccess           Outcome = "success"
	OutcomeQuotaExhausted    Outcome = "quota_exhausted"
	OutcomeTransportError    Outcome = "transport_error"
	OutcomeInvalidCredential Outcome = "invalid_credential"
)

// Refundable reports whether the attempt should give back the quota slot
// it was admitted with. Provider-side failures did not consume a
// successful generation, so the slot returns to the window.
func (o Outcome) Refundable() bool {
	return o == OutcomeTransportError || o == OutcomeInvalidCredential
}
