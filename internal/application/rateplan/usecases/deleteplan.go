package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/rasu25115/pickme/internal/domain/rateplan"
	"github.com/rasu25115/pickme/internal/shared/db"
	"github.com/rasu25115/pickme/internal/shared/logger"
)

type DeletePlanCommand struct {
	PlanSID string
}

// DeletePlanUseCase removes a plan and cascades to its entitlement rows in
// one transaction. Nothing else references plans, so no further checks.
type DeletePlanUseCase struct {
	planRepo  rateplan.PlanRepository
	entRepo   rateplan.EntitlementRepository
	txManager db.TxManager
	logger    logger.Interface
}

func NewDeletePlanUseCase(
	planRepo rateplan.PlanRepository,
	entRepo rateplan.EntitlementRepository,
	txManager db.TxManager,
	logger logger.Interface,
) *DeletePlanUseCase {
	return &DeletePlanUseCase{
		planRepo:  planRepo,
		entRepo:   entRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *DeletePlanUseCase) Execute(ctx context.Context, cmd DeletePlanCommand) error {
	plan, err := uc.planRepo.GetBySID(ctx, cmd.PlanSID)
	if err != nil {
		if errors.Is(err, rateplan.ErrPlanNotFound) {
			return err
		}
		uc.logger.Errorw("failed to fetch plan", "error", err, "plan_id", cmd.PlanSID)
		return fmt.Errorf("failed to fetch plan: %w", err)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.entRepo.DeleteByPlanID(txCtx, plan.ID()); err != nil {
			return fmt.Errorf("failed to delete entitlements: %w", err)
		}
		if err := uc.planRepo.Delete(txCtx, plan.ID()); err != nil {
			return fmt.Errorf("failed to delete plan: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to delete plan", "error", err, "plan_id", cmd.PlanSID)
		return err
	}

	uc.logger.Infow("plan deleted", "plan_id", cmd.PlanSID, "plan_name", plan.PlanName())

	return nil
}
