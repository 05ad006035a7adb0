package resolver

import (
	"reflect"
	"testing"

	"github.com/elhenawym124-ops/chatai-sub002/internal/pattern"
	"github.com/elhenawym124-ops/chatai-sub002/internal/prompt"
)

func wordUsage(preferred, avoided []string) pattern.Pattern {
	return pattern.Pattern{
		Type:      pattern.TypeWordUsage,
		WordUsage: &pattern.WordUsagePayload{Preferred: preferred, Avoided: avoided},
	}
}

func responseStyle(tone, length string) pattern.Pattern {
	return pattern.Pattern{
		Type:          pattern.TypeResponseStyle,
		ResponseStyle: &pattern.ResponseStylePayload{Tone: tone, Length: length},
	}
}

func settings(policy prompt.ResolutionPolicy) prompt.PrioritySettings {
	s := prompt.DefaultPrioritySettings("company-1")
	s.ConflictResolution = policy
	return s
}

func TestResolve_NoPatterns_PromptUnchanged(t *testing.T) {
	ps := prompt.PromptSet{
		PersonalityPrompt: "You are a friendly store assistant.",
		ResponsePrompt:    "Keep answers helpful.",
	}

	eff, report := Resolve(ps, nil, settings(prompt.PolicyMergeSmart))

	if eff.Personality != ps.PersonalityPrompt {
		t.Errorf("personality changed: %q", eff.Personality)
	}
	if eff.ResponseRules != ps.ResponsePrompt {
		t.Errorf("response rules changed: %q", eff.ResponseRules)
	}
	if report.HasConflicts {
		t.Error("expected no conflicts")
	}
}

func TestResolve_EmptyPrompt_PatternsSeedEffective(t *testing.T) {
	patterns := []pattern.Pattern{
		wordUsage([]string{"awesome"}, []string{"unfortunately"}),
		responseStyle("friendly", "short"),
	}

	eff, report := Resolve(prompt.PromptSet{}, patterns, settings(prompt.PolicyMergeSmart))

	if report.HasConflicts {
		t.Errorf("empty prompt cannot conflict, got %d conflicts", len(report.Conflicts))
	}
	if !reflect.DeepEqual(eff.PreferredWords, []string{"awesome"}) {
		t.Errorf("unexpected preferred words: %v", eff.PreferredWords)
	}
	if !reflect.DeepEqual(eff.AvoidedWords, []string{"unfortunately"}) {
		t.Errorf("unexpected avoided words: %v", eff.AvoidedWords)
	}
	if eff.Tone != "friendly" || eff.Length != "short" {
		t.Errorf("unexpected style: tone=%q length=%q", eff.Tone, eff.Length)
	}
	if eff.Serialize() == "" {
		t.Error("expected non-empty instruction block")
	}
}

func TestResolve_VocabularyConflict_PromptWins(t *testing.T) {
	ps := prompt.PromptSet{
		ResponsePrompt: `Never use the word "cheap". Always be polite.`,
	}
	patterns := []pattern.Pattern{
		wordUsage([]string{"cheap", "deal"}, nil),
	}

	eff, report := Resolve(ps, patterns, settings(prompt.PolicyPromptWins))

	if !report.HasConflicts || len(report.Conflicts) != 1 {
		t.Fatalf("expected exactly 1 conflict, got %+v", report.Conflicts)
	}
	if report.Conflicts[0].Chosen != prompt.SidePrompt {
		t.Errorf("expected prompt to win, got %s", report.Conflicts[0].Chosen)
	}
	// Conflicting pattern word dropped, non-conflicting one still merged.
	if contains(eff.PreferredWords, "cheap") {
		t.Error("conflicting pattern word must be dropped under prompt_wins")
	}
	if !contains(eff.PreferredWords, "deal") {
		t.Error("non-conflicting pattern word must still merge")
	}
	if !contains(eff.AvoidedWords, "cheap") {
		t.Error("prompt's forbidden word must survive")
	}
}

func TestResolve_VocabularyConflict_PatternsWin(t *testing.T) {
	ps := prompt.PromptSet{
		ResponsePrompt: `Never use the word "cheap".`,
	}
	patterns := []pattern.Pattern{wordUsage([]string{"cheap"}, nil)}

	eff, report := Resolve(ps, patterns, settings(prompt.PolicyPatternsWin))

	if !report.HasConflicts {
		t.Fatal("expected conflict")
	}
	if report.Conflicts[0].Chosen != prompt.SidePattern {
		t.Errorf("expected pattern to win, got %s", report.Conflicts[0].Chosen)
	}
	if !contains(eff.PreferredWords, "cheap") {
		t.Error("pattern word must be kept under patterns_win")
	}
	if contains(eff.AvoidedWords, "cheap") {
		t.Error("prompt's forbidden rule must be overridden under patterns_win")
	}
}

func TestResolve_VocabularyConflict_MultiWordPhrase(t *testing.T) {
	ps := prompt.PromptSet{
		ResponsePrompt: `Never use "best price ever".`,
	}
	patterns := []pattern.Pattern{
		wordUsage([]string{"best price ever"}, nil),
	}

	eff, report := Resolve(ps, patterns, settings(prompt.PolicyPromptWins))

	if !report.HasConflicts || len(report.Conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(report.Conflicts))
	}
	for _, w := range eff.PreferredWords {
		if w == "best price ever" {
			t.Errorf("prompt_wins left the forbidden phrase in preferred words: %v", eff.PreferredWords)
		}
	}
	if !reflect.DeepEqual(eff.AvoidedWords, []string{"best price ever"}) {
		t.Errorf("unexpected avoided words: %v", eff.AvoidedWords)
	}
}

func TestResolve_VocabularyConflict_MultiWordPhrase_PatternsWin(t *testing.T) {
	// Mirrored direction: the prompt prefers a phrase the pattern avoids,
	// and the pattern side wins.
	ps := prompt.PromptSet{
		ResponsePrompt: `Always use "happy to help".`,
	}
	patterns := []pattern.Pattern{
		wordUsage(nil, []string{"happy to help"}),
	}

	eff, report := Resolve(ps, patterns, settings(prompt.PolicyPatternsWin))

	if !report.HasConflicts || len(report.Conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(report.Conflicts))
	}
	for _, w := range eff.PreferredWords {
		if w == "happy to help" {
			t.Errorf("patterns_win left the overridden phrase in preferred words: %v", eff.PreferredWords)
		}
	}
	if !reflect.DeepEqual(eff.AvoidedWords, []string{"happy to help"}) {
		t.Errorf("unexpected avoided words: %v", eff.AvoidedWords)
	}
}

func TestResolve_EnforcePersonality_OverridesPatternsWin(t *testing.T) {
	ps := prompt.PromptSet{
		PersonalityPrompt: "You are a formal concierge.",
	}
	patterns := []pattern.Pattern{responseStyle("casual", "")}

	s := settings(prompt.PolicyPatternsWin)
	s.EnforcePersonality = true

	eff, report := Resolve(ps, patterns, s)

	if eff.Personality != ps.PersonalityPrompt {
		t.Errorf("personality text must be retained unchanged, got %q", eff.Personality)
	}
	if eff.Tone != "formal" {
		t.Errorf("enforced personality must pin prompt tone, got %q", eff.Tone)
	}
	// The conflict is still reported even though enforcement pinned it.
	if !report.HasConflicts || len(report.Conflicts) != 1 {
		t.Fatalf("conflict must still be listed, got %+v", report.Conflicts)
	}
	if report.Conflicts[0].Chosen != prompt.SidePrompt {
		t.Errorf("expected prompt pinned, got %s", report.Conflicts[0].Chosen)
	}
}

func TestResolve_EnforceLanguageStyle_PinsVocabulary(t *testing.T) {
	ps := prompt.PromptSet{ResponsePrompt: `Avoid "bro".`}
	patterns := []pattern.Pattern{wordUsage([]string{"bro"}, nil)}

	s := settings(prompt.PolicyPatternsWin)
	s.EnforceLanguageStyle = true

	eff, _ := Resolve(ps, patterns, s)

	if contains(eff.PreferredWords, "bro") {
		t.Error("enforced language style must drop the pattern word")
	}
	if !contains(eff.AvoidedWords, "bro") {
		t.Error("enforced language style must keep the prompt rule")
	}
}

func TestResolve_MergeSmart_TierComparison(t *testing.T) {
	ps := prompt.PromptSet{PersonalityPrompt: "Stay formal at all times."}
	patterns := []pattern.Pattern{responseStyle("casual", "")}

	s := settings(prompt.PolicyMergeSmart)
	s.PromptPriority = prompt.PriorityLow
	s.PatternsPriority = prompt.PriorityHigh

	eff, _ := Resolve(ps, patterns, s)
	if eff.Tone != "casual" {
		t.Errorf("higher patterns tier must win, got tone %q", eff.Tone)
	}

	// Tie prefers the prompt.
	s.PromptPriority = prompt.PriorityMedium
	s.PatternsPriority = prompt.PriorityMedium

	eff, _ = Resolve(ps, patterns, s)
	if eff.Tone != "formal" {
		t.Errorf("tie must prefer prompt, got tone %q", eff.Tone)
	}
}

func TestResolve_MergeSmart_Deterministic(t *testing.T) {
	ps := prompt.PromptSet{
		PersonalityPrompt: "Friendly but professional.",
		ResponsePrompt:    `Avoid "jargon" and "slang". Keep it short.`,
	}
	patterns := []pattern.Pattern{
		wordUsage([]string{"jargon", "thanks"}, []string{"sorry"}),
		responseStyle("casual", "long"),
	}
	s := settings(prompt.PolicyMergeSmart)

	first, firstReport := Resolve(ps, patterns, s)
	for i := 0; i < 10; i++ {
		eff, report := Resolve(ps, patterns, s)
		if !reflect.DeepEqual(eff, first) {
			t.Fatalf("run %d produced different effective prompt:\n%+v\nvs\n%+v", i, eff, first)
		}
		if len(report.Conflicts) != len(firstReport.Conflicts) {
			t.Fatalf("run %d produced different conflict count", i)
		}
	}
	if first.Serialize() != first.Serialize() {
		t.Error("serialization must be stable")
	}
}

func TestResolve_DetectionIsSymmetric(t *testing.T) {
	// Same disagreement expressed from both directions must report the
	// same number of conflicts.
	psForbids := prompt.PromptSet{ResponsePrompt: `Never use "discount".`}
	patPrefers := []pattern.Pattern{wordUsage([]string{"discount"}, nil)}

	psPrefers := prompt.PromptSet{ResponsePrompt: `Prefer "discount".`}
	patAvoids := []pattern.Pattern{wordUsage(nil, []string{"discount"})}

	s := settings(prompt.PolicyMergeSmart)

	_, r1 := Resolve(psForbids, patPrefers, s)
	_, r2 := Resolve(psPrefers, patAvoids, s)

	if len(r1.Conflicts) != 1 || len(r2.Conflicts) != 1 {
		t.Fatalf("expected 1 conflict on each side, got %d and %d", len(r1.Conflicts), len(r2.Conflicts))
	}
	if r1.Conflicts[0].Dimension != r2.Conflicts[0].Dimension {
		t.Error("mirrored conflicts must land on the same dimension")
	}
}

func TestResolve_AutoDetectOff_EmptyReport(t *testing.T) {
	ps := prompt.PromptSet{ResponsePrompt: `Never use "cheap".`}
	patterns := []pattern.Pattern{wordUsage([]string{"cheap"}, nil)}

	s := settings(prompt.PolicyPromptWins)
	s.AutoDetectConflicts = false

	eff, report := Resolve(ps, patterns, s)

	if report.HasConflicts || len(report.Conflicts) != 0 {
		t.Error("report must be empty when auto-detection is off")
	}
	// Resolution still happened.
	if contains(eff.PreferredWords, "cheap") {
		t.Error("resolution must run even when reporting is off")
	}
}

func TestAnalyze_Extraction(t *testing.T) {
	ps := prompt.PromptSet{
		PersonalityPrompt: "You are a professional support agent. Keep answers concise.",
		ResponsePrompt:    `Never use "maybe" or "perhaps". Prefer "certainly".`,
	}

	a := analyze(ps)

	if !contains(a.Forbidden, "maybe") || !contains(a.Forbidden, "perhaps") {
		t.Errorf("forbidden extraction failed: %v", a.Forbidden)
	}
	if !contains(a.Preferred, "certainly") {
		t.Errorf("preferred extraction failed: %v", a.Preferred)
	}
	if a.Tone != "professional" {
		t.Errorf("expected professional tone, got %q", a.Tone)
	}
	if a.Length != "short" {
		t.Errorf("expected short length, got %q", a.Length)
	}
}

func contains(words []string, w string) bool {
	for _, x := range words {
		if x == w {
			return true
		}
	}
	return false
}
