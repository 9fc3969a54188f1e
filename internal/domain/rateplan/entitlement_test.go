package rateplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rasu25115/pickme/internal/domain/catalog"
)

func newCatalog(t *testing.T) (free, pro, disabled *catalog.API) {
	t.Helper()
	var err error
	free, err = catalog.NewAPI("Pincode Lookup", catalog.APITypeFree, 0, 0, 0, "")
	require.NoError(t, err)
	pro, err = catalog.NewAPI("Aadhaar Verification", catalog.APITypePro, 3, 6, 2, "")
	require.NoError(t, err)
	disabled, err = catalog.NewAPI("Legacy RC Search", catalog.APITypeDisabled, 1, 2, 1, "")
	require.NoError(t, err)
	return free, pro, disabled
}

func TestSeedEntitlements(t *testing.T) {
	free, pro, disabled := newCatalog(t)

	entitlements := SeedEntitlements([]*catalog.API{free, pro, disabled})
	require.Len(t, entitlements, 3)

	byAPI := make(map[string]*Entitlement, len(entitlements))
	for _, e := range entitlements {
		byAPI[e.APISID()] = e
	}

	// only the free product starts enabled
	assert.True(t, byAPI[free.SID()].Enabled())
	assert.False(t, byAPI[pro.SID()].Enabled())
	assert.False(t, byAPI[disabled.SID()].Enabled())

	// pricing is copied from the catalog defaults
	proEnt := byAPI[pro.SID()]
	assert.Equal(t, pro.DefaultCreditCharge(), proEnt.CreditCost())
	assert.Equal(t, pro.GlobalBuyPrice(), proEnt.BuyPrice())
	assert.Equal(t, pro.GlobalSellPrice(), proEnt.SellPrice())
}

func TestSeedEntitlements_EmptyCatalog(t *testing.T) {
	entitlements := SeedEntitlements(nil)
	assert.Empty(t, entitlements)
}

func TestEntitlement_UpdatePricing(t *testing.T) {
	free, pro, _ := newCatalog(t)

	proEnt, err := NewEntitlement(pro.SID(), false, pro.DefaultCreditCharge(), pro.GlobalBuyPrice(), pro.GlobalSellPrice())
	require.NoError(t, err)

	require.NoError(t, proEnt.UpdatePricing(pro, 5, 4, 9))
	assert.Equal(t, uint64(5), proEnt.CreditCost())
	assert.Equal(t, uint64(4), proEnt.BuyPrice())
	assert.Equal(t, uint64(9), proEnt.SellPrice())

	freeEnt, err := NewEntitlement(free.SID(), true, 0, 0, 0)
	require.NoError(t, err)

	err = freeEnt.UpdatePricing(free, 5, 4, 9)
	require.ErrorIs(t, err, ErrPricingNotOverridable)
	assert.Equal(t, uint64(0), freeEnt.CreditCost())

	// mismatched api is rejected
	err = proEnt.UpdatePricing(free, 1, 1, 1)
	require.Error(t, err)
}

func TestEntitlement_SetEnabled(t *testing.T) {
	_, pro, _ := newCatalog(t)

	ent, err := NewEntitlement(pro.SID(), false, 2, 3, 6)
	require.NoError(t, err)

	ent.SetEnabled(true)
	assert.True(t, ent.Enabled())

	ent.SetEnabled(false)
	assert.False(t, ent.Enabled())
}

func TestEntitlement_AssignPlan(t *testing.T) {
	_, pro, _ := newCatalog(t)

	ent, err := NewEntitlement(pro.SID(), false, 2, 3, 6)
	require.NoError(t, err)

	require.NoError(t, ent.AssignPlan(7))
	assert.Equal(t, uint(7), ent.PlanID())

	// same plan is idempotent, a different one is not
	require.NoError(t, ent.AssignPlan(7))
	require.Error(t, ent.AssignPlan(8))
	require.Error(t, ent.AssignPlan(0))
}

func TestEnabledFractionAndPercent(t *testing.T) {
	free, pro, disabled := newCatalog(t)
	entitlements := SeedEntitlements([]*catalog.API{free, pro, disabled})

	enabled, total := EnabledFraction(entitlements)
	assert.Equal(t, 1, enabled)
	assert.Equal(t, 3, total)
	assert.Equal(t, 33, EnabledPercent(entitlements))

	assert.Equal(t, 0, EnabledPercent(nil))

	for _, e := range entitlements {
		e.SetEnabled(true)
	}
	assert.Equal(t, 100, EnabledPercent(entitlements))
}

func TestNewEntitlement_RequiresAPISID(t *testing.T) {
	_, err := NewEntitlement("", true, 0, 0, 0)
	require.Error(t, err)
}

func TestReconstructEntitlement(t *testing.T) {
	_, pro, _ := newCatalog(t)
	ent, err := NewEntitlement(pro.SID(), false, 2, 3, 6)
	require.NoError(t, err)

	got, err := ReconstructEntitlement(11, 7, ent.APISID(), ent.Enabled(),
		ent.CreditCost(), ent.BuyPrice(), ent.SellPrice(), ent.CreatedAt(), ent.UpdatedAt())
	require.NoError(t, err)
	assert.Equal(t, uint(11), got.ID())
	assert.Equal(t, uint(7), got.PlanID())

	_, err = ReconstructEntitlement(0, 7, ent.APISID(), false, 0, 0, 0, ent.CreatedAt(), ent.UpdatedAt())
	require.Error(t, err)
	_, err = ReconstructEntitlement(11, 0, ent.APISID(), false, 0, 0, 0, ent.CreatedAt(), ent.UpdatedAt())
	require.Error(t, err)
	_, err = ReconstructEntitlement(11, 7, "", false, 0, 0, 0, ent.CreatedAt(), ent.UpdatedAt())
	require.Error(t, err)
}
