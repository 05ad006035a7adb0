package gemini

// Catalog is the supported model set in recommended order: newer and
// cheaper models first. A credential created through the registry gets one
// model row per entry, with the entry's position as the model priority.
// DefaultQuota mirrors the provider free-tier daily request limits.
var Catalog = []ModelInfo{
	{ID: "gemini-2.5-flash", DisplayName: "Gemini 2.5 Flash", Description: "Fast, balanced quality. Recommended default.", DefaultQuota: 250},
	{ID: "gemini-2.5-flash-lite", DisplayName: "Gemini 2.5 Flash-Lite", Description: "Cheapest and fastest variant.", DefaultQuota: 1000},
	{ID: "gemini-2.5-pro", DisplayName: "Gemini 2.5 Pro", Description: "Highest quality, lowest quota.", DefaultQuota: 50},
	{ID: "gemini-2.0-flash", DisplayName: "Gemini 2.0 Flash", Description: "Previous generation flash.", DefaultQuota: 200},
	{ID: "gemini-2.0-flash-lite", DisplayName: "Gemini 2.0 Flash-Lite", Description: "Previous generation lite.", DefaultQuota: 200},
	{ID: "gemini-1.5-flash", DisplayName: "Gemini 1.5 Flash", Description: "Legacy flash, kept for older integrations.", DefaultQuota: 50},
	{ID: "gemini-1.5-pro", DisplayName: "Gemini 1.5 Pro", Description: "Legacy pro.", DefaultQuota: 50},
}

// ModelIDs returns the catalog model identifiers in recommended order.
func ModelIDs() []string {
	ids := make([]string, len(Catalog))
	for i, m := range Catalog {
		ids[i] = m.ID
	}
	return ids
}

// IsSupported reports whether modelID is part of the catalog.
func IsSupported(modelID string) bool {
	for _, m := range Catalog {
		if m.ID == modelID {
			return true
		}
	}
	return false
}
