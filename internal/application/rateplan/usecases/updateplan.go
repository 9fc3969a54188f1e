package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/rasu25115/pickme/internal/application/rateplan/dto"
	"github.com/rasu25115/pickme/internal/domain/catalog"
	"github.com/rasu25115/pickme/internal/domain/rateplan"
	"github.com/rasu25115/pickme/internal/shared/db"
	"github.com/rasu25115/pickme/internal/shared/logger"
)

type UpdatePlanCommand struct {
	PlanSID         string
	PlanName        string
	UserType        string
	MonthlyFee      uint64
	RenewalRequired bool
	TopupAllowed    bool
	// Status is optional; empty leaves the current status untouched.
	Status string
	// Entitlements is the full replacement set from the plan editor.
	Entitlements []dto.EntitlementInput
}

// UpdatePlanUseCase rewrites a plan and its entire entitlement set in one
// transaction. The editor submits the full matrix, so the old rows are
// replaced wholesale rather than patched.
type UpdatePlanUseCase struct {
	planRepo   rateplan.PlanRepository
	entRepo    rateplan.EntitlementRepository
	apiRepo    catalog.APIRepository
	txManager  db.TxManager
	creditRate uint64
	logger     logger.Interface
}

func NewUpdatePlanUseCase(
	planRepo rateplan.PlanRepository,
	entRepo rateplan.EntitlementRepository,
	apiRepo catalog.APIRepository,
	txManager db.TxManager,
	creditRate uint64,
	logger logger.Interface,
) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{
		planRepo:   planRepo,
		entRepo:    entRepo,
		apiRepo:    apiRepo,
		txManager:  txManager,
		creditRate: creditRate,
		logger:     logger,
	}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*dto.PlanDTO, error) {
	plan, err := uc.planRepo.GetBySID(ctx, cmd.PlanSID)
	if err != nil {
		if errors.Is(err, rateplan.ErrPlanNotFound) {
			return nil, err
		}
		uc.logger.Errorw("failed to fetch plan", "error", err, "plan_id", cmd.PlanSID)
		return nil, fmt.Errorf("failed to fetch plan: %w", err)
	}

	if err := plan.UpdateDetails(
		cmd.PlanName,
		rateplan.UserType(cmd.UserType),
		cmd.MonthlyFee,
		cmd.RenewalRequired,
		cmd.TopupAllowed,
		uc.creditRate,
	); err != nil {
		uc.logger.Errorw("failed to update plan", "error", err, "plan_id", cmd.PlanSID)
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}

	switch rateplan.PlanStatus(cmd.Status) {
	case rateplan.PlanStatusActive:
		plan.Activate()
	case rateplan.PlanStatusInactive:
		plan.Deactivate()
	}

	entitlements, err := uc.buildEntitlements(ctx, plan, cmd.Entitlements)
	if err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.planRepo.Update(txCtx, plan); err != nil {
			return fmt.Errorf("failed to persist plan update: %w", err)
		}
		if err := uc.entRepo.ReplaceForPlan(txCtx, plan.ID(), entitlements); err != nil {
			return fmt.Errorf("failed to replace entitlements: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update plan", "error", err, "plan_id", cmd.PlanSID)
		return nil, err
	}

	uc.logger.Infow("plan updated",
		"plan_id", plan.SID(),
		"plan_name", plan.PlanName(),
		"default_credits", plan.DefaultCredits(),
		"entitlements", len(entitlements))

	return dto.ToPlanDTO(plan, entitlements), nil
}

// buildEntitlements resolves editor rows against the plan's stored rows and
// the current catalog. Each row already on the plan keeps its stored pricing
// as the baseline; catalog defaults apply only to APIs new to the plan, so a
// later catalog price change never bleeds into an existing plan on save.
// Submitted pricing that actually differs from the baseline is a PRO-only
// override; the editor echoing the baseline back is not an override. Rows
// referencing APIs that no longer exist are skipped with a warning.
func (uc *UpdatePlanUseCase) buildEntitlements(ctx context.Context, plan *rateplan.Plan, inputs []dto.EntitlementInput) ([]*rateplan.Entitlement, error) {
	apis, err := uc.apiRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list apis", "error", err)
		return nil, fmt.Errorf("failed to list apis: %w", err)
	}

	apisBySID := make(map[string]*catalog.API, len(apis))
	for _, api := range apis {
		apisBySID[api.SID()] = api
	}

	stored, err := uc.entRepo.ListByPlanID(ctx, plan.ID())
	if err != nil {
		uc.logger.Errorw("failed to list plan entitlements", "error", err, "plan_id", plan.SID())
		return nil, fmt.Errorf("failed to list plan entitlements: %w", err)
	}
	storedBySID := make(map[string]*rateplan.Entitlement, len(stored))
	for _, ent := range stored {
		storedBySID[ent.APISID()] = ent
	}

	entitlements := make([]*rateplan.Entitlement, 0, len(inputs))
	for _, input := range inputs {
		api, ok := apisBySID[input.APIID]
		if !ok {
			uc.logger.Warnw("skipping entitlement for unknown api", "api_id", input.APIID, "plan_id", plan.SID())
			continue
		}

		creditCost := api.DefaultCreditCharge()
		buyPrice := api.GlobalBuyPrice()
		sellPrice := api.GlobalSellPrice()
		if prev, ok := storedBySID[input.APIID]; ok {
			creditCost = prev.CreditCost()
			buyPrice = prev.BuyPrice()
			sellPrice = prev.SellPrice()
		}

		ent, err := rateplan.NewEntitlement(api.SID(), input.Enabled, creditCost, buyPrice, sellPrice)
		if err != nil {
			return nil, fmt.Errorf("failed to build entitlement: %w", err)
		}

		if hasPricingOverride(input) {
			newCreditCost := valueOr(input.CreditCost, creditCost)
			newBuyPrice := valueOr(input.BuyPrice, buyPrice)
			newSellPrice := valueOr(input.SellPrice, sellPrice)
			if newCreditCost != creditCost || newBuyPrice != buyPrice || newSellPrice != sellPrice {
				if err := ent.UpdatePricing(api, newCreditCost, newBuyPrice, newSellPrice); err != nil {
					return nil, err
				}
			}
		}

		if err := ent.AssignPlan(plan.ID()); err != nil {
			return nil, fmt.Errorf("failed to assign entitlement: %w", err)
		}
		entitlements = append(entitlements, ent)
	}

	return entitlements, nil
}

func hasPricingOverride(input dto.EntitlementInput) bool {
	return input.CreditCost != nil || input.BuyPrice != nil || input.SellPrice != nil
}

func valueOr(v *uint64, fallback uint64) uint64 {
	if v != nil {
		return *v
	}
	return fallback
}
