package postgre

import (
	"context"
	"encoding/json"

	"github.com/elhenawym124-ops/chatai-sub002/internal/pattern"
)

// Active returns the approved, active patterns for a tenant in discovery
// order. Rows with a payload that does not match their type are skipped
// rather than failing the whole read.
func (s *implSource) Active(ctx context.Context, companyID string) ([]pattern.Pattern, error) {
	const query = `
		SELECT id, company_id, type, payload, confidence, created_at
		FROM behavior_patterns
		WHERE company_id = $1 AND approved = TRUE AND active = TRUE
		ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, companyID)
	if err != nil {
		s.l.Errorf(ctx, "pattern/postgre.Active: %v", err)
		return nil, err
	}
	defer rows.Close()

	var patterns []pattern.Pattern
	for rows.Next() {
		var p pattern.Pattern
		var payload []byte
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.Type, &payload, &p.Confidence, &p.CreatedAt); err != nil {
			s.l.Errorf(ctx, "pattern/postgre.Active scan: %v", err)
			return nil, err
		}
		if err := decodePayload(&p, payload); err != nil {
			s.l.Warnf(ctx, "pattern/postgre.Active: skipping pattern %s with bad payload: %v", p.ID, err)
			continue
		}
		patterns = append(patterns, p)
	}
	return patterns, rows.Err()
}

func decodePayload(p *pattern.Pattern, payload []byte) error {
	switch p.Type {
	case pattern.TypeWordUsage:
		p.WordUsage = &pattern.WordUsagePayload{}
		return json.Unmarshal(payload, p.WordUsage)
	case pattern.TypeResponseStyle:
		p.ResponseStyle = &pattern.ResponseStylePayload{}
		return json.Unmarshal(payload, p.ResponseStyle)
	case pattern.TypeEmojiUsage:
		p.EmojiUsage = &pattern.EmojiUsagePayload{}
		return json.Unmarshal(payload, p.EmojiUsage)
	default:
		// Unknown pattern types are carried without payload so newer
		// analyzer versions do not break older cores.
		return nil
	}
}
