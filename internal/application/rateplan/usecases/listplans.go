package usecases

import (
	"context"
	"fmt"

	"github.com/rasu25115/pickme/internal/application/rateplan/dto"
	"github.com/rasu25115/pickme/internal/domain/rateplan"
	"github.com/rasu25115/pickme/internal/shared/logger"
)

type ListPlansCommand struct{}

// ListPlansUseCase returns all plans with their enabled/total API counts.
// Entitlements are fetched in one pass and grouped in memory to avoid a
// query per plan.
type ListPlansUseCase struct {
	planRepo rateplan.PlanRepository
	entRepo  rateplan.EntitlementRepository
	logger   logger.Interface
}

func NewListPlansUseCase(
	planRepo rateplan.PlanRepository,
	entRepo rateplan.EntitlementRepository,
	logger logger.Interface,
) *ListPlansUseCase {
	return &ListPlansUseCase{
		planRepo: planRepo,
		entRepo:  entRepo,
		logger:   logger,
	}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context, _ ListPlansCommand) ([]*dto.PlanDTO, error) {
	plans, err := uc.planRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list plans", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	entitlements, err := uc.entRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list entitlements", "error", err)
		return nil, fmt.Errorf("failed to list entitlements: %w", err)
	}

	byPlan := make(map[uint][]*rateplan.Entitlement, len(plans))
	for _, ent := range entitlements {
		byPlan[ent.PlanID()] = append(byPlan[ent.PlanID()], ent)
	}

	dtos := make([]*dto.PlanDTO, 0, len(plans))
	for _, plan := range plans {
		dtos = append(dtos, dto.ToPlanDTO(plan, byPlan[plan.ID()]))
	}
	return dtos, nil
}
