package dto

// PlanDTO is the rate plan representation returned to admin clients.
// EnabledAPIs and TotalAPIs summarize the entitlement set for list views;
// Entitlements is populated on detail reads only.
type PlanDTO struct {
	ID              string            `json:"id"`
	PlanName        string            `json:"plan_name"`
	UserType        string            `json:"user_type"`
	MonthlyFee      uint64            `json:"monthly_fee"`
	DefaultCredits  uint64            `json:"default_credits"`
	RenewalRequired bool              `json:"renewal_required"`
	TopupAllowed    bool              `json:"topup_allowed"`
	Status          string            `json:"status"`
	EnabledAPIs     int               `json:"enabled_apis"`
	TotalAPIs       int               `json:"total_apis"`
	Entitlements    []*EntitlementDTO `json:"entitlements,omitempty"`
	CreatedAt       int64             `json:"created_at"`
	UpdatedAt       int64             `json:"updated_at"`
}

// EntitlementDTO is one API row inside a plan, joined with the catalog so
// clients get the product name and tier alongside the plan-local pricing.
type EntitlementDTO struct {
	APIID      string `json:"api_id"`
	APIName    string `json:"api_name"`
	APIType    string `json:"api_type"`
	Enabled    bool   `json:"enabled"`
	CreditCost uint64 `json:"credit_cost"`
	BuyPrice   uint64 `json:"buy_price"`
	SellPrice  uint64 `json:"sell_price"`
}

// EntitlementInput is one API row submitted by the plan editor. Pricing
// fields are optional; when omitted the catalog defaults apply. Overrides
// only take effect on PRO products.
type EntitlementInput struct {
	APIID      string  `json:"api_id" validate:"required"`
	Enabled    bool    `json:"enabled"`
	CreditCost *uint64 `json:"credit_cost,omitempty"`
	BuyPrice   *uint64 `json:"buy_price,omitempty"`
	SellPrice  *uint64 `json:"sell_price,omitempty"`
}

// PlanStatsDTO carries the rate plan summary counts.
type PlanStatsDTO struct {
	TotalPlans  int `json:"total_plans"`
	ActivePlans int `json:"active_plans"`
}
