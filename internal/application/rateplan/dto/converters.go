package dto

import (
	"github.com/rasu25115/pickme/internal/domain/catalog"
	"github.com/rasu25115/pickme/internal/domain/rateplan"
)

// ToPlanDTO converts a plan and its entitlement summary to a DTO.
func ToPlanDTO(plan *rateplan.Plan, entitlements []*rateplan.Entitlement) *PlanDTO {
	if plan == nil {
		return nil
	}
	enabled, total := rateplan.EnabledFraction(entitlements)
	return &PlanDTO{
		ID:              plan.SID(),
		PlanName:        plan.PlanName(),
		UserType:        plan.UserType().String(),
		MonthlyFee:      plan.MonthlyFee(),
		DefaultCredits:  plan.DefaultCredits(),
		RenewalRequired: plan.RenewalRequired(),
		TopupAllowed:    plan.TopupAllowed(),
		Status:          string(plan.Status()),
		EnabledAPIs:     enabled,
		TotalAPIs:       total,
		CreatedAt:       plan.CreatedAt().Unix(),
		UpdatedAt:       plan.UpdatedAt().Unix(),
	}
}

// ToPlanDTOWithEntitlements builds the detail view: every entitlement row is
// joined with its catalog entry. Rows whose API has since been deleted from
// the catalog are dropped rather than failing the read.
func ToPlanDTOWithEntitlements(plan *rateplan.Plan, entitlements []*rateplan.Entitlement, apisBySID map[string]*catalog.API) *PlanDTO {
	planDTO := ToPlanDTO(plan, entitlements)
	if planDTO == nil {
		return nil
	}

	rows := make([]*EntitlementDTO, 0, len(entitlements))
	for _, ent := range entitlements {
		api, ok := apisBySID[ent.APISID()]
		if !ok {
			continue
		}
		rows = append(rows, &EntitlementDTO{
			APIID:      ent.APISID(),
			APIName:    api.Name(),
			APIType:    api.Type().String(),
			Enabled:    ent.Enabled(),
			CreditCost: ent.CreditCost(),
			BuyPrice:   ent.BuyPrice(),
			SellPrice:  ent.SellPrice(),
		})
	}
	planDTO.Entitlements = rows
	return planDTO
}
