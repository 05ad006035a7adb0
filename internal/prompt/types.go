package prompt

import (
	"strings"
	"time"
)

// --- Stored state ---

// PromptSet is the operator-authored instruction pair for one tenant.
type PromptSet struct {
	CompanyID         string
	PersonalityPrompt string
	ResponsePrompt    string
	UpdatedAt         time.Time
}

// IsEmpty reports whether the operator has configured any prompt text.
func (ps PromptSet) IsEmpty() bool {
	return strings.TrimSpace(ps.PersonalityPrompt) == "" && strings.TrimSpace(ps.ResponsePrompt) == ""
}

// Priority is a coarse importance tier.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is one of the known tiers.
func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// Tier maps the priority to a comparable rank (higher wins).
func (p Priority) Tier() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// ResolutionPolicy selects how prompt/pattern disagreements are settled.
type ResolutionPolicy string

const (
	PolicyPromptWins  ResolutionPolicy = "prompt_wins"
	PolicyPatternsWin ResolutionPolicy = "patterns_win"
	PolicyMergeSmart  ResolutionPolicy = "merge_smart"
)

// Valid reports whether rp is one of the known policies.
func (rp ResolutionPolicy) Valid() bool {
	return rp == PolicyPromptWins || rp == PolicyPatternsWin || rp == PolicyMergeSmart
}

// PrioritySettings is the per-tenant conflict resolution configuration.
type PrioritySettings struct {
	CompanyID          string
	PromptPriority     Priority
	PatternsPriority   Priority
	ConflictResolution ResolutionPolicy

	EnforcePersonality   bool
	EnforceLanguageStyle bool
	AutoDetectConflicts  bool
	ConflictReports      bool

	UpdatedAt time.Time
}

// DefaultPrioritySettings are applied to tenants that never saved settings:
// explicit operator intent ranks above learned behavior, smart merge,
// detection on, report persistence off.
func DefaultPrioritySettings(companyID string) PrioritySettings {
	return PrioritySettings{
		CompanyID:           companyID,
		PromptPriority:      PriorityHigh,
		PatternsPriority:    PriorityMedium,
		ConflictResolution:  PolicyMergeSmart,
		AutoDetectConflicts: true,
	}
}

// --- Resolver output ---

// EffectivePrompt is the merged instruction payload handed to the provider
// call. Personality and ResponseRules carry operator text; the remaining
// fields are the merged behavioral directives.
type EffectivePrompt struct {
	Personality    string
	ResponseRules  string
	PreferredWords []string
	AvoidedWords   []string
	Tone           string
	Length         string
	UseEmoji       bool
	EmojiFrequency string
}

// Serialize renders the single instruction block sent to the model.
func (ep EffectivePrompt) Serialize() string {
	var b strings.Builder

	if ep.Personality != "" {
		b.WriteString("## Personality\n")
		b.WriteString(strings.TrimSpace(ep.Personality))
		b.WriteString("\n\n")
	}

	if ep.ResponseRules != "" {
		b.WriteString("## Response rules\n")
		b.WriteString(strings.TrimSpace(ep.ResponseRules))
		b.WriteString("\n\n")
	}

	var directives []string
	if len(ep.PreferredWords) > 0 {
		directives = append(directives, "Prefer these words when natural: "+strings.Join(ep.PreferredWords, ", "))
	}
	if len(ep.AvoidedWords) > 0 {
		directives = append(directives, "Never use these words: "+strings.Join(ep.AvoidedWords, ", "))
	}
	if ep.Tone != "" {
		directives = append(directives, "Tone: "+ep.Tone)
	}
	switch ep.Length {
	case "short":
		directives = append(directives, "Keep responses short and to the point")
	case "long":
		directives = append(directives, "Give detailed, thorough responses")
	}
	if ep.UseEmoji {
		freq := ep.EmojiFrequency
		if freq == "" {
			freq = "moderate"
		}
		directives = append(directives, "Emoji are welcome ("+freq+" use)")
	}

	if len(directives) > 0 {
		b.WriteString("## Style directives\n")
		for _, d := range directives {
			b.WriteString("- ")
			b.WriteString(d)
			b.WriteString("\n")
		}
	}

	return strings.TrimSpace(b.String())
}

// --- Conflict reporting ---

// Severity grades a detected conflict.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Side names the winner of a resolved conflict.
type Side string

const (
	SidePrompt  Side = "prompt"
	SidePattern Side = "pattern"
)

// Conflict is one detected disagreement between the operator prompt and a
// learned pattern, with the resolution that was applied.
type Conflict struct {
	Dimension    string   `json:"dimension"` // vocabulary | tone | length
	PromptValue  string   `json:"prompt_value"`
	PatternValue string   `json:"pattern_value"`
	Severity     Severity `json:"severity"`
	Chosen       Side     `json:"chosen"`
	Rationale    string   `json:"rationale"`

	// Word is the disputed vocabulary item, set for the vocabulary
	// dimension only. It may be a multi-word phrase, so resolution acts
	// on this field rather than parsing the display values above.
	Word string `json:"word,omitempty"`
	// PromptForbids records the direction of a vocabulary conflict: true
	// when the prompt forbids the word and the pattern prefers it.
	PromptForbids bool `json:"prompt_forbids,omitempty"`
}

// Description renders the conflict for operator-facing listings.
func (c Conflict) Description() string {
	return "Conflict on " + c.Dimension + ": prompt says " + strconvQuote(c.PromptValue) +
		", learned pattern says " + strconvQuote(c.PatternValue) + " (resolved in favor of " + string(c.Chosen) + ")"
}

func strconvQuote(s string) string {
	return `"` + s + `"`
}

// Report is the resolver's account of what it found and decided.
type Report struct {
	HasConflicts    bool       `json:"has_conflicts"`
	Conflicts       []Conflict `json:"conflicts"`
	Recommendations []string   `json:"recommendations"`
}

// MaxSeverity returns the highest severity among the conflicts, or empty.
func (r Report) MaxSeverity() Severity {
	max := Severity("")
	rank := func(s Severity) int {
		switch s {
		case SeverityHigh:
			return 3
		case SeverityMedium:
			return 2
		case SeverityLow:
			return 1
		}
		return 0
	}
	for _, c := range r.Conflicts {
		if rank(c.Severity) > rank(max) {
			max = c.Severity
		}
	}
	return max
}

// --- UseCase inputs/outputs ---

type UpdatePromptsInput struct {
	CompanyID         string
	PersonalityPrompt string
	ResponsePrompt    string
}

type UpdateSettingsInput struct {
	Settings PrioritySettings
}

type ComposeOutput struct {
	Effective   EffectivePrompt
	Instruction string
	Report      Report
}

type TestConflictInput struct {
	CompanyID string
	Prompt    string
	Patterns  []TestPattern
}

// TestPattern is the dry-run pattern shape accepted by the conflict test
// endpoint (operator-supplied, not read from the store).
type TestPattern struct {
	Type      string
	Preferred []string
	Avoided   []string
	Tone      string
	Length    string
}
