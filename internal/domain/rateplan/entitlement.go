package rateplan

import (
	"fmt"
	"math"
	"time"

	"github.com/rasu25115/pickme/internal/domain/catalog"
)

// Entitlement binds one catalog API to one plan. It records whether the API
// is enabled for subscribers of the plan and at what plan-local pricing.
// Pricing starts as a copy of the catalog defaults; only PRO products may be
// repriced per plan afterwards.
type Entitlement struct {
	id         uint
	planID     uint
	apiSID     string
	enabled    bool
	creditCost uint64
	buyPrice   uint64
	sellPrice  uint64
	createdAt  time.Time
	updatedAt  time.Time
}

// NewEntitlement creates an entitlement for one API on a plan, copying the
// catalog's default pricing.
func NewEntitlement(apiSID string, enabled bool, creditCost, buyPrice, sellPrice uint64) (*Entitlement, error) {
	if apiSID == "" {
		return nil, fmt.Errorf("api SID is required")
	}

	now := time.Now()
	return &Entitlement{
		apiSID:     apiSID,
		enabled:    enabled,
		creditCost: creditCost,
		buyPrice:   buyPrice,
		sellPrice:  sellPrice,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructEntitlement reconstructs an entitlement from persistence
func ReconstructEntitlement(entID, planID uint, apiSID string, enabled bool, creditCost, buyPrice, sellPrice uint64, createdAt, updatedAt time.Time) (*Entitlement, error) {
	if entID == 0 {
		return nil, fmt.Errorf("entitlement ID cannot be zero")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	if apiSID == "" {
		return nil, fmt.Errorf("api SID is required")
	}

	return &Entitlement{
		id:         entID,
		planID:     planID,
		apiSID:     apiSID,
		enabled:    enabled,
		creditCost: creditCost,
		buyPrice:   buyPrice,
		sellPrice:  sellPrice,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

// SeedEntitlements builds the default entitlement set for a new plan: one
// row per catalog API, enabled only for free-tier products, with pricing
// copied from the catalog defaults.
func SeedEntitlements(apis []*catalog.API) []*Entitlement {
	entitlements := make([]*Entitlement, 0, len(apis))
	for _, api := range apis {
		ent, err := NewEntitlement(
			api.SID(),
			api.IsFree(),
			api.DefaultCreditCharge(),
			api.GlobalBuyPrice(),
			api.GlobalSellPrice(),
		)
		if err != nil {
			continue
		}
		entitlements = append(entitlements, ent)
	}
	return entitlements
}

func (e *Entitlement) ID() uint {
	return e.id
}

func (e *Entitlement) SetID(entID uint) error {
	if e.id != 0 {
		return fmt.Errorf("entitlement ID is already set")
	}
	if entID == 0 {
		return fmt.Errorf("entitlement ID cannot be zero")
	}
	e.id = entID
	return nil
}

func (e *Entitlement) PlanID() uint {
	return e.planID
}

// AssignPlan attaches the entitlement to its owning plan. Reassignment to a
// different plan is not allowed.
func (e *Entitlement) AssignPlan(planID uint) error {
	if planID == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	if e.planID != 0 && e.planID != planID {
		return fmt.Errorf("entitlement already belongs to plan %d", e.planID)
	}
	e.planID = planID
	return nil
}

func (e *Entitlement) APISID() string {
	return e.apiSID
}

func (e *Entitlement) Enabled() bool {
	return e.enabled
}

func (e *Entitlement) CreditCost() uint64 {
	return e.creditCost
}

func (e *Entitlement) BuyPrice() uint64 {
	return e.buyPrice
}

func (e *Entitlement) SellPrice() uint64 {
	return e.sellPrice
}

func (e *Entitlement) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Entitlement) UpdatedAt() time.Time {
	return e.updatedAt
}

// SetEnabled switches the API on or off for the plan.
func (e *Entitlement) SetEnabled(enabled bool) {
	if e.enabled == enabled {
		return
	}
	e.enabled = enabled
	e.updatedAt = time.Now()
}

// UpdatePricing overrides the plan-local pricing. Only PRO products accept
// overrides; free and disabled products keep their catalog defaults.
func (e *Entitlement) UpdatePricing(api *catalog.API, creditCost, buyPrice, sellPrice uint64) error {
	if api.SID() != e.apiSID {
		return fmt.Errorf("api %s does not match entitlement %s", api.SID(), e.apiSID)
	}
	if api.Type() != catalog.APITypePro {
		return ErrPricingNotOverridable
	}

	e.creditCost = creditCost
	e.buyPrice = buyPrice
	e.sellPrice = sellPrice
	e.updatedAt = time.Now()
	return nil
}

// EnabledFraction returns how many of the given entitlements are enabled,
// as enabled count and total.
func EnabledFraction(entitlements []*Entitlement) (enabled, total int) {
	total = len(entitlements)
	for _, e := range entitlements {
		if e.enabled {
			enabled++
		}
	}
	return enabled, total
}

// EnabledPercent returns the enabled share of the given entitlements as a
// whole percentage. An empty set reports zero.
func EnabledPercent(entitlements []*Entitlement) int {
	enabled, total := EnabledFraction(entitlements)
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(enabled) / float64(total) * 100))
}
