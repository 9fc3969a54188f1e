package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rasu25115/pickme/internal/domain/rateplan"
	"github.com/rasu25115/pickme/internal/shared/logger"
)

func TestDeletePlanUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes plan and cascades entitlements", func(t *testing.T) {
		planRepo := new(mockPlanRepository)
		entRepo := new(mockEntitlementRepository)

		planRepo.On("GetBySID", mock.Anything, "plan_abc123def456").Return(storedPlan(t), nil)
		entRepo.On("DeleteByPlanID", mock.Anything, uint(7)).Return(nil)
		planRepo.On("Delete", mock.Anything, uint(7)).Return(nil)

		uc := NewDeletePlanUseCase(planRepo, entRepo, fakeTxManager{}, logger.NewNop())

		err := uc.Execute(ctx, DeletePlanCommand{PlanSID: "plan_abc123def456"})
		require.NoError(t, err)

		planRepo.AssertExpectations(t)
		entRepo.AssertExpectations(t)
	})

	t.Run("returns not found for unknown plan", func(t *testing.T) {
		planRepo := new(mockPlanRepository)
		entRepo := new(mockEntitlementRepository)

		planRepo.On("GetBySID", mock.Anything, "plan_missing00000").Return(nil, rateplan.ErrPlanNotFound)

		uc := NewDeletePlanUseCase(planRepo, entRepo, fakeTxManager{}, logger.NewNop())

		err := uc.Execute(ctx, DeletePlanCommand{PlanSID: "plan_missing00000"})
		require.ErrorIs(t, err, rateplan.ErrPlanNotFound)

		entRepo.AssertNotCalled(t, "DeleteByPlanID", mock.Anything, mock.Anything)
	})

	t.Run("keeps the plan when the cascade fails", func(t *testing.T) {
		planRepo := new(mockPlanRepository)
		entRepo := new(mockEntitlementRepository)

		planRepo.On("GetBySID", mock.Anything, "plan_abc123def456").Return(storedPlan(t), nil)
		entRepo.On("DeleteByPlanID", mock.Anything, uint(7)).Return(errors.New("db down"))

		uc := NewDeletePlanUseCase(planRepo, entRepo, fakeTxManager{}, logger.NewNop())

		err := uc.Execute(ctx, DeletePlanCommand{PlanSID: "plan_abc123def456"})
		require.Error(t, err)

		planRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
