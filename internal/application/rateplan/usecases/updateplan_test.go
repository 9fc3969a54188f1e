package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rasu25115/pickme/internal/application/rateplan/dto"
	"github.com/rasu25115/pickme/internal/domain/rateplan"
	"github.com/rasu25115/pickme/internal/shared/logger"
)

func storedPlan(t *testing.T) *rateplan.Plan {
	t.Helper()
	now := time.Now()
	plan, err := rateplan.ReconstructPlan(7, "plan_abc123def456", "Police Basic", "Police",
		500, 50, true, false, "Active", now, now)
	require.NoError(t, err)
	return plan
}

func storedPlanEntitlement(t *testing.T, entID uint, apiSID string, enabled bool, creditCost, buyPrice, sellPrice uint64) *rateplan.Entitlement {
	t.Helper()
	now := time.Now()
	ent, err := rateplan.ReconstructEntitlement(entID, 7, apiSID, enabled, creditCost, buyPrice, sellPrice, now, now)
	require.NoError(t, err)
	return ent
}

func uintPtr(v uint64) *uint64 { return &v }

func TestUpdatePlanUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("updates plan and replaces entitlements", func(t *testing.T) {
		planRepo := new(mockPlanRepository)
		entRepo := new(mockEntitlementRepository)
		apiRepo := new(mockAPIRepository)
		apis := testCatalog(t)
		free, pro := apis[0], apis[1]

		planRepo.On("GetBySID", mock.Anything, "plan_abc123def456").Return(storedPlan(t), nil)
		apiRepo.On("List", mock.Anything).Return(apis, nil)
		entRepo.On("ListByPlanID", mock.Anything, uint(7)).Return([]*rateplan.Entitlement{
			storedPlanEntitlement(t, 1, free.SID(), true, 0, 0, 0),
			storedPlanEntitlement(t, 2, pro.SID(), false, 2, 3, 6),
		}, nil)
		planRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		var replaced []*rateplan.Entitlement
		entRepo.On("ReplaceForPlan", mock.Anything, uint(7), mock.Anything).
			Run(func(args mock.Arguments) {
				replaced = args.Get(2).([]*rateplan.Entitlement)
			}).Return(nil)

		uc := NewUpdatePlanUseCase(planRepo, entRepo, apiRepo, fakeTxManager{}, rateplan.DefaultCreditRate, logger.NewNop())

		result, err := uc.Execute(ctx, UpdatePlanCommand{
			PlanSID:    "plan_abc123def456",
			PlanName:   "Police Plus",
			UserType:   "Police",
			MonthlyFee: 1200,
			Entitlements: []dto.EntitlementInput{
				{APIID: free.SID(), Enabled: true},
				{APIID: pro.SID(), Enabled: true, CreditCost: uintPtr(5), SellPrice: uintPtr(9)},
			},
		})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "Police Plus", result.PlanName)
		// credits follow the new fee
		assert.Equal(t, uint64(120), result.DefaultCredits)
		assert.Equal(t, 2, result.EnabledAPIs)

		require.Len(t, replaced, 2)
		byAPI := make(map[string]*rateplan.Entitlement)
		for _, ent := range replaced {
			byAPI[ent.APISID()] = ent
		}
		assert.Equal(t, uint64(5), byAPI[pro.SID()].CreditCost())
		assert.Equal(t, uint64(9), byAPI[pro.SID()].SellPrice())
		// omitted override field keeps the stored value
		assert.Equal(t, uint64(3), byAPI[pro.SID()].BuyPrice())
	})

	t.Run("stored pricing survives a catalog price change", func(t *testing.T) {
		planRepo := new(mockPlanRepository)
		entRepo := new(mockEntitlementRepository)
		apiRepo := new(mockAPIRepository)
		apis := testCatalog(t)
		pro := apis[1]

		planRepo.On("GetBySID", mock.Anything, "plan_abc123def456").Return(storedPlan(t), nil)
		apiRepo.On("List", mock.Anything).Return(apis, nil)
		// the plan was sold with sell price 5; the catalog has since moved to 6
		entRepo.On("ListByPlanID", mock.Anything, uint(7)).Return([]*rateplan.Entitlement{
			storedPlanEntitlement(t, 2, pro.SID(), true, 2, 3, 5),
		}, nil)
		planRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		var replaced []*rateplan.Entitlement
		entRepo.On("ReplaceForPlan", mock.Anything, uint(7), mock.Anything).
			Run(func(args mock.Arguments) {
				replaced = args.Get(2).([]*rateplan.Entitlement)
			}).Return(nil)

		uc := NewUpdatePlanUseCase(planRepo, entRepo, apiRepo, fakeTxManager{}, rateplan.DefaultCreditRate, logger.NewNop())

		_, err := uc.Execute(ctx, UpdatePlanCommand{
			PlanSID:    "plan_abc123def456",
			PlanName:   "Police Basic",
			UserType:   "Police",
			MonthlyFee: 500,
			Entitlements: []dto.EntitlementInput{
				{APIID: pro.SID(), Enabled: false},
			},
		})

		require.NoError(t, err)
		require.Len(t, replaced, 1)
		assert.Equal(t, uint64(5), replaced[0].SellPrice())
		assert.Equal(t, uint64(3), replaced[0].BuyPrice())
		assert.Equal(t, uint64(2), replaced[0].CreditCost())
		assert.False(t, replaced[0].Enabled())
	})

	t.Run("echoed stored pricing on a free api is not an override", func(t *testing.T) {
		planRepo := new(mockPlanRepository)
		entRepo := new(mockEntitlementRepository)
		apiRepo := new(mockAPIRepository)
		apis := testCatalog(t)
		free := apis[0]

		planRepo.On("GetBySID", mock.Anything, "plan_abc123def456").Return(storedPlan(t), nil)
		apiRepo.On("List", mock.Anything).Return(apis, nil)
		// historic free row with pricing that no longer matches the catalog
		entRepo.On("ListByPlanID", mock.Anything, uint(7)).Return([]*rateplan.Entitlement{
			storedPlanEntitlement(t, 1, free.SID(), true, 4, 1, 2),
		}, nil)
		planRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		var replaced []*rateplan.Entitlement
		entRepo.On("ReplaceForPlan", mock.Anything, uint(7), mock.Anything).
			Run(func(args mock.Arguments) {
				replaced = args.Get(2).([]*rateplan.Entitlement)
			}).Return(nil)

		uc := NewUpdatePlanUseCase(planRepo, entRepo, apiRepo, fakeTxManager{}, rateplan.DefaultCreditRate, logger.NewNop())

		// the editor sends every row back with its current values
		_, err := uc.Execute(ctx, UpdatePlanCommand{
			PlanSID:    "plan_abc123def456",
			PlanName:   "Police Basic",
			UserType:   "Police",
			MonthlyFee: 500,
			Entitlements: []dto.EntitlementInput{
				{APIID: free.SID(), Enabled: true, CreditCost: uintPtr(4), BuyPrice: uintPtr(1), SellPrice: uintPtr(2)},
			},
		})

		require.NoError(t, err)
		require.Len(t, replaced, 1)
		assert.Equal(t, uint64(4), replaced[0].CreditCost())
		assert.Equal(t, uint64(1), replaced[0].BuyPrice())
		assert.Equal(t, uint64(2), replaced[0].SellPrice())
	})

	t.Run("skips rows for apis missing from the catalog", func(t *testing.T) {
		planRepo := new(mockPlanRepository)
		entRepo := new(mockEntitlementRepository)
		apiRepo := new(mockAPIRepository)
		apis := testCatalog(t)

		planRepo.On("GetBySID", mock.Anything, "plan_abc123def456").Return(storedPlan(t), nil)
		apiRepo.On("List", mock.Anything).Return(apis, nil)
		entRepo.On("ListByPlanID", mock.Anything, uint(7)).Return([]*rateplan.Entitlement{}, nil)
		planRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		var replaced []*rateplan.Entitlement
		entRepo.On("ReplaceForPlan", mock.Anything, uint(7), mock.Anything).
			Run(func(args mock.Arguments) {
				replaced = args.Get(2).([]*rateplan.Entitlement)
			}).Return(nil)

		uc := NewUpdatePlanUseCase(planRepo, entRepo, apiRepo, fakeTxManager{}, rateplan.DefaultCreditRate, logger.NewNop())

		_, err := uc.Execute(ctx, UpdatePlanCommand{
			PlanSID:    "plan_abc123def456",
			PlanName:   "Police Basic",
			UserType:   "Police",
			MonthlyFee: 500,
			Entitlements: []dto.EntitlementInput{
				{APIID: apis[0].SID(), Enabled: true},
				{APIID: "api_goneforever00", Enabled: true},
			},
		})

		require.NoError(t, err)
		require.Len(t, replaced, 1)
		assert.Equal(t, apis[0].SID(), replaced[0].APISID())
	})

	t.Run("rejects changed pricing on a free api", func(t *testing.T) {
		planRepo := new(mockPlanRepository)
		entRepo := new(mockEntitlementRepository)
		apiRepo := new(mockAPIRepository)
		apis := testCatalog(t)
		free := apis[0]

		planRepo.On("GetBySID", mock.Anything, "plan_abc123def456").Return(storedPlan(t), nil)
		apiRepo.On("List", mock.Anything).Return(apis, nil)
		entRepo.On("ListByPlanID", mock.Anything, uint(7)).Return([]*rateplan.Entitlement{
			storedPlanEntitlement(t, 1, free.SID(), true, 0, 0, 0),
		}, nil)

		uc := NewUpdatePlanUseCase(planRepo, entRepo, apiRepo, fakeTxManager{}, rateplan.DefaultCreditRate, logger.NewNop())

		result, err := uc.Execute(ctx, UpdatePlanCommand{
			PlanSID:    "plan_abc123def456",
			PlanName:   "Police Basic",
			UserType:   "Police",
			MonthlyFee: 500,
			Entitlements: []dto.EntitlementInput{
				{APIID: free.SID(), Enabled: true, CreditCost: uintPtr(3)},
			},
		})

		require.ErrorIs(t, err, rateplan.ErrPricingNotOverridable)
		assert.Nil(t, result)
		entRepo.AssertNotCalled(t, "ReplaceForPlan", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("returns not found for unknown plan", func(t *testing.T) {
		planRepo := new(mockPlanRepository)
		entRepo := new(mockEntitlementRepository)
		apiRepo := new(mockAPIRepository)

		planRepo.On("GetBySID", mock.Anything, "plan_missing00000").Return(nil, rateplan.ErrPlanNotFound)

		uc := NewUpdatePlanUseCase(planRepo, entRepo, apiRepo, fakeTxManager{}, rateplan.DefaultCreditRate, logger.NewNop())

		result, err := uc.Execute(ctx, UpdatePlanCommand{
			PlanSID:    "plan_missing00000",
			PlanName:   "Police Basic",
			UserType:   "Police",
			MonthlyFee: 500,
		})

		require.ErrorIs(t, err, rateplan.ErrPlanNotFound)
		assert.Nil(t, result)
	})

	t.Run("rejects invalid fee without persisting", func(t *testing.T) {
		planRepo := new(mockPlanRepository)
		entRepo := new(mockEntitlementRepository)
		apiRepo := new(mockAPIRepository)

		planRepo.On("GetBySID", mock.Anything, "plan_abc123def456").Return(storedPlan(t), nil)

		uc := NewUpdatePlanUseCase(planRepo, entRepo, apiRepo, fakeTxManager{}, rateplan.DefaultCreditRate, logger.NewNop())

		result, err := uc.Execute(ctx, UpdatePlanCommand{
			PlanSID:    "plan_abc123def456",
			PlanName:   "Police Basic",
			UserType:   "Police",
			MonthlyFee: 0,
		})

		require.Error(t, err)
		assert.Nil(t, result)
		planRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
