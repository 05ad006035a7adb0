package resolver

import (
	"regexp"
	"sort"
	"strings"

	"github.com/elhenawym124-ops/chatai-sub002/internal/prompt"
)

// promptAnalysis is what the resolver can read out of free-form operator
// prompt text: explicit vocabulary directives plus inferred tone and
// length preferences.
type promptAnalysis struct {
	Preferred []string
	Forbidden []string
	Tone      string
	Length    string
}

var (
	forbidRe = regexp.MustCompile(`(?i)\b(?:avoid|never\s+use|do\s+not\s+use|don't\s+use|never\s+say|do\s+not\s+say)\b(?:\s+the)?(?:\s+words?)?[:\s]+(.+)`)
	preferRe = regexp.MustCompile(`(?i)\b(?:always\s+use|prefer|preferred\s+words?)\b(?:\s+the)?(?:\s+words?)?[:\s]+(.+)`)
	quotedRe = regexp.MustCompile(`"([^"]+)"|'([^']+)'`)
)

// toneKeywords in detection order; the earliest occurrence in the text
// wins so a prompt mentioning several tones stays deterministic.
var toneKeywords = []string{"professional", "formal", "casual", "friendly"}

var (
	shortHints = []string{"short", "concise", "brief", "to the point"}
	longHints  = []string{"detailed", "thorough", "in-depth", "long-form"}
)

// analyze extracts vocabulary, tone and length claims from a PromptSet.
// Free text is messy; the extraction is intentionally conservative — an
// unparseable directive is ignored, never guessed at.
func analyze(ps prompt.PromptSet) promptAnalysis {
	var a promptAnalysis

	rules := ps.ResponsePrompt
	full := ps.PersonalityPrompt + "\n" + ps.ResponsePrompt

	for _, line := range splitDirectives(rules) {
		if m := forbidRe.FindStringSubmatch(line); m != nil {
			a.Forbidden = append(a.Forbidden, extractWords(m[1])...)
			continue
		}
		if m := preferRe.FindStringSubmatch(line); m != nil {
			a.Preferred = append(a.Preferred, extractWords(m[1])...)
		}
	}

	a.Preferred = dedupe(a.Preferred)
	a.Forbidden = dedupe(a.Forbidden)
	a.Tone = detectTone(full)
	a.Length = detectLength(full)
	return a
}

// splitDirectives breaks prompt text into one directive per element so a
// single "avoid X. prefer Y" sentence pair is read as two directives.
func splitDirectives(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		for _, sentence := range strings.Split(line, ".") {
			sentence = strings.TrimSpace(sentence)
			if sentence != "" {
				out = append(out, sentence)
			}
		}
	}
	return out
}

// extractWords pulls the word list out of a directive tail. Quoted tokens
// win; otherwise the tail is split on commas/"and"/"or" and only
// single-word tokens are kept.
func extractWords(tail string) []string {
	var words []string

	if quoted := quotedRe.FindAllStringSubmatch(tail, -1); len(quoted) > 0 {
		for _, q := range quoted {
			w := q[1]
			if w == "" {
				w = q[2]
			}
			words = append(words, normalizeWord(w))
		}
		return words
	}

	tail = strings.NewReplacer(" and ", ",", " or ", ",").Replace(tail)
	for _, tok := range strings.Split(tail, ",") {
		tok = strings.Trim(strings.TrimSpace(tok), `.,;:!?"'`)
		if tok == "" || strings.ContainsAny(tok, " \t") {
			continue
		}
		words = append(words, normalizeWord(tok))
	}
	return words
}

func normalizeWord(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}

func detectTone(text string) string {
	lower := strings.ToLower(text)
	best := ""
	bestIdx := -1
	for _, tone := range toneKeywords {
		idx := strings.Index(lower, tone)
		if idx >= 0 && (bestIdx == -1 || idx < bestIdx) {
			best = tone
			bestIdx = idx
		}
	}
	return best
}

func detectLength(text string) string {
	lower := strings.ToLower(text)
	shortIdx, longIdx := -1, -1
	for _, h := range shortHints {
		if idx := strings.Index(lower, h); idx >= 0 && (shortIdx == -1 || idx < shortIdx) {
			shortIdx = idx
		}
	}
	for _, h := range longHints {
		if idx := strings.Index(lower, h); idx >= 0 && (longIdx == -1 || idx < longIdx) {
			longIdx = idx
		}
	}
	switch {
	case shortIdx == -1 && longIdx == -1:
		return ""
	case longIdx == -1 || (shortIdx != -1 && shortIdx < longIdx):
		return "short"
	default:
		return "long"
	}
}

func dedupe(words []string) []string {
	seen := make(map[string]bool, len(words))
	var out []string
	for _, w := range words {
		if !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	return out
}

// sortedWords returns a sorted copy so effective prompts are byte-stable
// across runs regardless of map iteration upstream.
func sortedWords(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
