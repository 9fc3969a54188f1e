package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rasu25115/pickme/internal/domain/rateplan"
	"github.com/rasu25115/pickme/internal/shared/logger"
)

func storedEntitlement(t *testing.T, entID, planID uint, apiSID string, enabled bool) *rateplan.Entitlement {
	t.Helper()
	now := time.Now()
	ent, err := rateplan.ReconstructEntitlement(entID, planID, apiSID, enabled, 2, 3, 6, now, now)
	require.NoError(t, err)
	return ent
}

func TestListPlansUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("groups entitlement stats per plan", func(t *testing.T) {
		planRepo := new(mockPlanRepository)
		entRepo := new(mockEntitlementRepository)

		now := time.Now()
		planA, err := rateplan.ReconstructPlan(1, "plan_aaa111aaa111", "Police Basic", "Police",
			500, 50, true, false, "Active", now, now)
		require.NoError(t, err)
		planB, err := rateplan.ReconstructPlan(2, "plan_bbb222bbb222", "Private Pro", "Private",
			1500, 150, false, true, "Active", now, now)
		require.NoError(t, err)

		planRepo.On("List", mock.Anything).Return([]*rateplan.Plan{planA, planB}, nil)
		entRepo.On("ListAll", mock.Anything).Return([]*rateplan.Entitlement{
			storedEntitlement(t, 1, 1, "api_one123456789", true),
			storedEntitlement(t, 2, 1, "api_two123456789", false),
			storedEntitlement(t, 3, 2, "api_one123456789", true),
			storedEntitlement(t, 4, 2, "api_two123456789", true),
		}, nil)

		uc := NewListPlansUseCase(planRepo, entRepo, logger.NewNop())

		result, err := uc.Execute(ctx, ListPlansCommand{})
		require.NoError(t, err)
		require.Len(t, result, 2)

		assert.Equal(t, 1, result[0].EnabledAPIs)
		assert.Equal(t, 2, result[0].TotalAPIs)
		assert.Equal(t, 2, result[1].EnabledAPIs)
		assert.Equal(t, 2, result[1].TotalAPIs)
	})

	t.Run("plan without entitlements reports zero counts", func(t *testing.T) {
		planRepo := new(mockPlanRepository)
		entRepo := new(mockEntitlementRepository)

		planRepo.On("List", mock.Anything).Return([]*rateplan.Plan{storedPlan(t)}, nil)
		entRepo.On("ListAll", mock.Anything).Return([]*rateplan.Entitlement{}, nil)

		uc := NewListPlansUseCase(planRepo, entRepo, logger.NewNop())

		result, err := uc.Execute(ctx, ListPlansCommand{})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, 0, result[0].EnabledAPIs)
		assert.Equal(t, 0, result[0].TotalAPIs)
	})
}
