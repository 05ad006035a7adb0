package pattern

import "time"

// Type discriminates the pattern payload.
type Type string

const (
	TypeWordUsage     Type = "word_usage"
	TypeResponseStyle Type = "response_style"
	TypeEmojiUsage    Type = "emoji_usage"
)

// Pattern is one behavioral preference learned by the external analysis
// component. Exactly one payload field is set, matching Type.
type Pattern struct {
	ID        string
	CompanyID string
	Type      Type

	WordUsage     *WordUsagePayload
	ResponseStyle *ResponseStylePayload
	EmojiUsage    *EmojiUsagePayload

	Confidence float64
	CreatedAt  time.Time
}

// WordUsagePayload lists vocabulary the tenant's customers respond well
// (or poorly) to.
type WordUsagePayload struct {
	Preferred []string `json:"preferred"`
	Avoided   []string `json:"avoided"`
}

// ResponseStylePayload captures tone and target length.
// Tone: formal | professional | casual | friendly.
// Length: short | medium | long.
type ResponseStylePayload struct {
	Tone   string `json:"tone"`
	Length string `json:"length"`
}

// EmojiUsagePayload captures whether and how often emoji land well.
type EmojiUsagePayload struct {
	Enabled   bool   `json:"enabled"`
	Frequency string `json:"frequency"` // rare | moderate | frequent
}
