// Package resolver merges an operator-authored prompt with learned
// behavioral patterns into one effective instruction payload. It is a pure
// function of its inputs: no storage, no network, no clock.
package resolver

import (
	"github.com/elhenawym124-ops/chatai-sub002/internal/pattern"
	"github.com/elhenawym124-ops/chatai-sub002/internal/prompt"
)

// tieBreakPromptWins settles merge_smart when both sides sit on the same
// priority tier. Explicit operator intent wins by default; flip this
// constant if requirements ever prefer learned behavior on ties.
const tieBreakPromptWins = true

const (
	dimVocabulary = "vocabulary"
	dimTone       = "tone"
	dimLength     = "length"
)

// patternClaims is the pattern side flattened into comparable attributes.
type patternClaims struct {
	Preferred []string
	Avoided   []string
	Tone      string
	Length    string
	Emoji     *pattern.EmojiUsagePayload
}

// Resolve merges ps and patterns under the given settings. The report
// always comes back; its conflict list is populated only when
// AutoDetectConflicts is set. Detection is symmetric: a conflict between
// a prompt rule and a pattern claim is found no matter which side is
// examined first.
func Resolve(ps prompt.PromptSet, patterns []pattern.Pattern, s prompt.PrioritySettings) (prompt.EffectivePrompt, prompt.Report) {
	an := analyze(ps)
	claims := flatten(patterns)

	conflicts := detect(an, claims, s)

	eff := apply(ps, an, claims, conflicts)
	report := buildReport(conflicts, s)
	return eff, report
}

func flatten(patterns []pattern.Pattern) patternClaims {
	var c patternClaims
	for _, p := range patterns {
		switch p.Type {
		case pattern.TypeWordUsage:
			if p.WordUsage != nil {
				for _, w := range p.WordUsage.Preferred {
					c.Preferred = append(c.Preferred, normalizeWord(w))
				}
				for _, w := range p.WordUsage.Avoided {
					c.Avoided = append(c.Avoided, normalizeWord(w))
				}
			}
		case pattern.TypeResponseStyle:
			if p.ResponseStyle != nil {
				if p.ResponseStyle.Tone != "" {
					c.Tone = normalizeWord(p.ResponseStyle.Tone)
				}
				if p.ResponseStyle.Length != "" {
					c.Length = normalizeWord(p.ResponseStyle.Length)
				}
			}
		case pattern.TypeEmojiUsage:
			if p.EmojiUsage != nil {
				c.Emoji = p.EmojiUsage
			}
		}
	}
	c.Preferred = dedupe(c.Preferred)
	c.Avoided = dedupe(c.Avoided)
	return c
}

// detect finds every disagreement between the prompt analysis and the
// pattern claims and decides its winner up front, so that apply() and the
// report cannot drift apart.
func detect(an promptAnalysis, claims patternClaims, s prompt.PrioritySettings) []prompt.Conflict {
	var conflicts []prompt.Conflict

	promptForbidden := toSet(an.Forbidden)
	promptPreferred := toSet(an.Preferred)

	// Vocabulary: pattern prefers a word the prompt forbids.
	for _, w := range claims.Preferred {
		if promptForbidden[w] {
			c := newConflict(dimVocabulary,
				"avoid "+w, "prefer "+w, prompt.SeverityMedium, s)
			c.Word = w
			c.PromptForbids = true
			conflicts = append(conflicts, c)
		}
	}
	// Vocabulary, mirrored: pattern avoids a word the prompt prefers.
	for _, w := range claims.Avoided {
		if promptPreferred[w] {
			c := newConflict(dimVocabulary,
				"prefer "+w, "avoid "+w, prompt.SeverityMedium, s)
			c.Word = w
			conflicts = append(conflicts, c)
		}
	}

	if an.Tone != "" && claims.Tone != "" && an.Tone != claims.Tone {
		conflicts = append(conflicts, newConflict(dimTone,
			an.Tone, claims.Tone, prompt.SeverityHigh, s))
	}

	if an.Length != "" && claims.Length != "" && an.Length != claims.Length {
		conflicts = append(conflicts, newConflict(dimLength,
			an.Length, claims.Length, prompt.SeverityLow, s))
	}

	return conflicts
}

func newConflict(dimension, promptValue, patternValue string, severity prompt.Severity, s prompt.PrioritySettings) prompt.Conflict {
	chosen, rationale := decide(dimension, s)
	return prompt.Conflict{
		Dimension:    dimension,
		PromptValue:  promptValue,
		PatternValue: patternValue,
		Severity:     severity,
		Chosen:       chosen,
		Rationale:    rationale,
	}
}

// decide names the winning side for one conflicting dimension. Enforce
// flags pin the prompt before any policy runs.
func decide(dimension string, s prompt.PrioritySettings) (prompt.Side, string) {
	if dimension == dimTone && s.EnforcePersonality {
		return prompt.SidePrompt, "personality is enforced"
	}
	if dimension == dimVocabulary && s.EnforceLanguageStyle {
		return prompt.SidePrompt, "language style is enforced"
	}

	switch s.ConflictResolution {
	case prompt.PolicyPromptWins:
		return prompt.SidePrompt, "policy prompt_wins"
	case prompt.PolicyPatternsWin:
		return prompt.SidePattern, "policy patterns_win"
	default: // merge_smart
		promptTier := s.PromptPriority.Tier()
		patternTier := s.PatternsPriority.Tier()
		if promptTier > patternTier {
			return prompt.SidePrompt, "prompt priority outranks patterns"
		}
		if patternTier > promptTier {
			return prompt.SidePattern, "patterns priority outranks prompt"
		}
		if tieBreakPromptWins {
			return prompt.SidePrompt, "priority tie, operator intent preferred"
		}
		return prompt.SidePattern, "priority tie, learned behavior preferred"
	}
}

// apply builds the effective prompt from both sides, honoring conflict
// winners. Non-conflicting attributes from either side are always merged.
func apply(ps prompt.PromptSet, an promptAnalysis, claims patternClaims, conflicts []prompt.Conflict) prompt.EffectivePrompt {
	preferred := toSet(an.Preferred)
	avoided := toSet(an.Forbidden)
	for _, w := range claims.Preferred {
		preferred[w] = true
	}
	for _, w := range claims.Avoided {
		avoided[w] = true
	}

	tone := an.Tone
	if tone == "" {
		tone = claims.Tone
	}
	length := an.Length
	if length == "" {
		length = claims.Length
	}

	for _, c := range conflicts {
		switch c.Dimension {
		case dimVocabulary:
			// c.Word may be a quoted multi-word phrase; the display
			// values are never parsed here.
			if c.Chosen == prompt.SidePrompt {
				if c.PromptForbids {
					delete(preferred, c.Word)
				} else {
					delete(avoided, c.Word)
				}
			} else {
				if c.PromptForbids {
					delete(avoided, c.Word)
				} else {
					delete(preferred, c.Word)
				}
			}
		case dimTone:
			if c.Chosen == prompt.SidePrompt {
				tone = an.Tone
			} else {
				tone = claims.Tone
			}
		case dimLength:
			if c.Chosen == prompt.SidePrompt {
				length = an.Length
			} else {
				length = claims.Length
			}
		}
	}

	eff := prompt.EffectivePrompt{
		Personality:    ps.PersonalityPrompt,
		ResponseRules:  ps.ResponsePrompt,
		PreferredWords: sortedWords(preferred),
		AvoidedWords:   sortedWords(avoided),
		Tone:           tone,
		Length:         length,
	}
	if claims.Emoji != nil {
		eff.UseEmoji = claims.Emoji.Enabled
		eff.EmojiFrequency = claims.Emoji.Frequency
	}
	return eff
}

func buildReport(conflicts []prompt.Conflict, s prompt.PrioritySettings) prompt.Report {
	if !s.AutoDetectConflicts {
		return prompt.Report{}
	}

	report := prompt.Report{
		HasConflicts: len(conflicts) > 0,
		Conflicts:    conflicts,
	}
	for _, c := range conflicts {
		report.Recommendations = append(report.Recommendations, recommend(c))
	}
	return report
}

func recommend(c prompt.Conflict) string {
	switch c.Dimension {
	case dimVocabulary:
		if c.Chosen == prompt.SidePrompt {
			return "Learned vocabulary \"" + c.PatternValue + "\" was dropped; relax the response rules if customers respond well to it"
		}
		return "Prompt rule \"" + c.PromptValue + "\" was overridden by learned vocabulary; tighten enforce_language_style to keep it"
	case dimTone:
		return "Align the personality prompt tone (" + c.PromptValue + ") with the learned tone (" + c.PatternValue + "), or set enforce_personality to pin it"
	default:
		return "Prompt length preference (" + c.PromptValue + ") disagrees with learned preference (" + c.PatternValue + "); consider updating the response rules"
	}
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
