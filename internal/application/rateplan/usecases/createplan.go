package usecases

import (
	"context"
	"fmt"

	"github.com/rasu25115/pickme/internal/application/rateplan/dto"
	"github.com/rasu25115/pickme/internal/domain/catalog"
	"github.com/rasu25115/pickme/internal/domain/rateplan"
	"github.com/rasu25115/pickme/internal/shared/db"
	"github.com/rasu25115/pickme/internal/shared/logger"
)

type CreatePlanCommand struct {
	PlanName        string
	UserType        string
	MonthlyFee      uint64
	RenewalRequired bool
	TopupAllowed    bool
}

// CreatePlanUseCase creates a plan and seeds one entitlement per catalog
// API in a single transaction. Free products start enabled, everything else
// disabled, all at catalog default pricing.
type CreatePlanUseCase struct {
	planRepo   rateplan.PlanRepository
	entRepo    rateplan.EntitlementRepository
	apiRepo    catalog.APIRepository
	txManager  db.TxManager
	creditRate uint64
	logger     logger.Interface
}

func NewCreatePlanUseCase(
	planRepo rateplan.PlanRepository,
	entRepo rateplan.EntitlementRepository,
	apiRepo catalog.APIRepository,
	txManager db.TxManager,
	creditRate uint64,
	logger logger.Interface,
) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo:   planRepo,
		entRepo:    entRepo,
		apiRepo:    apiRepo,
		txManager:  txManager,
		creditRate: creditRate,
		logger:     logger,
	}
}

func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*dto.PlanDTO, error) {
	plan, err := rateplan.NewPlan(
		cmd.PlanName,
		rateplan.UserType(cmd.UserType),
		cmd.MonthlyFee,
		cmd.RenewalRequired,
		cmd.TopupAllowed,
		uc.creditRate,
	)
	if err != nil {
		uc.logger.Errorw("failed to create plan", "error", err, "plan_name", cmd.PlanName)
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}

	apis, err := uc.apiRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list apis for seeding", "error", err)
		return nil, fmt.Errorf("failed to list apis: %w", err)
	}

	entitlements := rateplan.SeedEntitlements(apis)

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.planRepo.Create(txCtx, plan); err != nil {
			return fmt.Errorf("failed to persist plan: %w", err)
		}
		for _, ent := range entitlements {
			if err := ent.AssignPlan(plan.ID()); err != nil {
				return fmt.Errorf("failed to assign entitlement: %w", err)
			}
		}
		if err := uc.entRepo.ReplaceForPlan(txCtx, plan.ID(), entitlements); err != nil {
			return fmt.Errorf("failed to persist entitlements: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to create plan", "error", err, "plan_name", cmd.PlanName)
		return nil, err
	}

	uc.logger.Infow("plan created",
		"plan_id", plan.SID(),
		"plan_name", plan.PlanName(),
		"default_credits", plan.DefaultCredits(),
		"entitlements", len(entitlements))

	return dto.ToPlanDTO(plan, entitlements), nil
}
