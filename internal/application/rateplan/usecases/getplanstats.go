package usecases

import (
	"context"
	"fmt"

	"github.com/rasu25115/pickme/internal/application/rateplan/dto"
	"github.com/rasu25115/pickme/internal/domain/rateplan"
	"github.com/rasu25115/pickme/internal/shared/logger"
)

// GetPlanStatsUseCase computes the headline numbers for the rate plan
// dashboard cards.
type GetPlanStatsUseCase struct {
	planRepo rateplan.PlanRepository
	logger   logger.Interface
}

func NewGetPlanStatsUseCase(planRepo rateplan.PlanRepository, logger logger.Interface) *GetPlanStatsUseCase {
	return &GetPlanStatsUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *GetPlanStatsUseCase) Execute(ctx context.Context) (*dto.PlanStatsDTO, error) {
	plans, err := uc.planRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list plans for stats", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	stats := &dto.PlanStatsDTO{TotalPlans: len(plans)}
	for _, plan := range plans {
		if plan.IsActive() {
			stats.ActivePlans++
		}
	}

	return stats, nil
}
