package dto

// APIDTO is the catalog entry representation returned to admin clients.
type APIDTO struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Type                string `json:"type"`
	GlobalBuyPrice      uint64 `json:"global_buy_price"`
	GlobalSellPrice     uint64 `json:"global_sell_price"`
	DefaultCreditCharge uint64 `json:"default_credit_charge"`
	Description         string `json:"description"`
	CreatedAt           int64  `json:"created_at"`
	UpdatedAt           int64  `json:"updated_at"`
}

// CatalogStatsDTO carries the catalog summary counts. ActiveAPIs counts
// products that are not disabled.
type CatalogStatsDTO struct {
	TotalAPIs  int `json:"total_apis"`
	ActiveAPIs int `json:"active_apis"`
}
