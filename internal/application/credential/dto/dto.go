package dto

// APIKeyDTO is the masked credential representation returned to admin
// clients. The raw secret never appears here; RevealAPIKey is the only path
// that returns it.
type APIKeyDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Provider     string `json:"provider"`
	MaskedSecret string `json:"masked_secret"`
	Status       string `json:"status"`
	UsageCount   uint64 `json:"usage_count"`
	UsagePercent int    `json:"usage_percent"`
	LastUsedAt   *int64 `json:"last_used_at,omitempty"`
	CreatedAt    int64  `json:"created_at"`
	UpdatedAt    int64  `json:"updated_at"`
}

// RevealedKeyDTO carries the raw secret for the explicit reveal operation.
type RevealedKeyDTO struct {
	ID     string `json:"id"`
	Secret string `json:"secret"`
}

// KeyStatsDTO carries the provider key summary counts.
type KeyStatsDTO struct {
	TotalKeys  int    `json:"total_keys"`
	ActiveKeys int    `json:"active_keys"`
	TotalUsage uint64 `json:"total_usage"`
}
