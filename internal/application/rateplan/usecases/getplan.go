package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/rasu25115/pickme/internal/application/rateplan/dto"
	"github.com/rasu25115/pickme/internal/domain/catalog"
	"github.com/rasu25115/pickme/internal/domain/rateplan"
	"github.com/rasu25115/pickme/internal/shared/logger"
)

type GetPlanCommand struct {
	PlanSID string
}

// GetPlanUseCase returns one plan with its full entitlement matrix joined
// against the catalog.
type GetPlanUseCase struct {
	planRepo rateplan.PlanRepository
	entRepo  rateplan.EntitlementRepository
	apiRepo  catalog.APIRepository
	logger   logger.Interface
}

func NewGetPlanUseCase(
	planRepo rateplan.PlanRepository,
	entRepo rateplan.EntitlementRepository,
	apiRepo catalog.APIRepository,
	logger logger.Interface,
) *GetPlanUseCase {
	return &GetPlanUseCase{
		planRepo: planRepo,
		entRepo:  entRepo,
		apiRepo:  apiRepo,
		logger:   logger,
	}
}

func (uc *GetPlanUseCase) Execute(ctx context.Context, cmd GetPlanCommand) (*dto.PlanDTO, error) {
	plan, err := uc.planRepo.GetBySID(ctx, cmd.PlanSID)
	if err != nil {
		if errors.Is(err, rateplan.ErrPlanNotFound) {
			return nil, err
		}
		uc.logger.Errorw("failed to fetch plan", "error", err, "plan_id", cmd.PlanSID)
		return nil, fmt.Errorf("failed to fetch plan: %w", err)
	}

	entitlements, err := uc.entRepo.ListByPlanID(ctx, plan.ID())
	if err != nil {
		uc.logger.Errorw("failed to list entitlements", "error", err, "plan_id", cmd.PlanSID)
		return nil, fmt.Errorf("failed to list entitlements: %w", err)
	}

	apis, err := uc.apiRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list apis", "error", err)
		return nil, fmt.Errorf("failed to list apis: %w", err)
	}

	apisBySID := make(map[string]*catalog.API, len(apis))
	for _, api := range apis {
		apisBySID[api.SID()] = api
	}

	return dto.ToPlanDTOWithEntitlements(plan, entitlements, apisBySID), nil
}
