package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	plandto "github.com/rasu25115/pickme/internal/application/rateplan/dto"
	"github.com/rasu25115/pickme/internal/application/rateplan/usecases"
	"github.com/rasu25115/pickme/internal/shared/logger"
	"github.com/rasu25115/pickme/internal/shared/utils"
)

// RatePlanHandler serves the rate plan endpoints, including the per-plan
// API entitlement matrix.
type RatePlanHandler struct {
	createPlanUC *usecases.CreatePlanUseCase
	updatePlanUC *usecases.UpdatePlanUseCase
	deletePlanUC *usecases.DeletePlanUseCase
	getPlanUC    *usecases.GetPlanUseCase
	listPlansUC  *usecases.ListPlansUseCase
	statsUC      *usecases.GetPlanStatsUseCase
	logger       logger.Interface
}

func NewRatePlanHandler(
	createPlanUC *usecases.CreatePlanUseCase,
	updatePlanUC *usecases.UpdatePlanUseCase,
	deletePlanUC *usecases.DeletePlanUseCase,
	getPlanUC *usecases.GetPlanUseCase,
	listPlansUC *usecases.ListPlansUseCase,
	statsUC *usecases.GetPlanStatsUseCase,
) *RatePlanHandler {
	return &RatePlanHandler{
		createPlanUC: createPlanUC,
		updatePlanUC: updatePlanUC,
		deletePlanUC: deletePlanUC,
		getPlanUC:    getPlanUC,
		listPlansUC:  listPlansUC,
		statsUC:      statsUC,
		logger:       logger.NewLogger(),
	}
}

type CreateRatePlanRequest struct {
	PlanName        string `json:"plan_name" binding:"required,max=100"`
	UserType        string `json:"user_type" binding:"required,oneof=Police Private Custom"`
	MonthlyFee      uint64 `json:"monthly_fee" binding:"required,gt=0"`
	RenewalRequired bool   `json:"renewal_required"`
	TopupAllowed    bool   `json:"topup_allowed"`
}

type UpdateRatePlanRequest struct {
	PlanName        string                     `json:"plan_name" binding:"required,max=100"`
	UserType        string                     `json:"user_type" binding:"required,oneof=Police Private Custom"`
	MonthlyFee      uint64                     `json:"monthly_fee" binding:"required,gt=0"`
	RenewalRequired bool                       `json:"renewal_required"`
	TopupAllowed    bool                       `json:"topup_allowed"`
	Status          string                     `json:"status" binding:"omitempty,oneof=Active Inactive"`
	Entitlements    []plandto.EntitlementInput `json:"entitlements"`
}

func (h *RatePlanHandler) CreateRatePlan(c *gin.Context) {
	var req CreateRatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create rate plan", "error", err)
		respondBindError(c, err)
		return
	}

	cmd := usecases.CreatePlanCommand{
		PlanName:        req.PlanName,
		UserType:        req.UserType,
		MonthlyFee:      req.MonthlyFee,
		RenewalRequired: req.RenewalRequired,
		TopupAllowed:    req.TopupAllowed,
	}

	result, err := h.createPlanUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Rate plan created successfully")
}

func (h *RatePlanHandler) UpdateRatePlan(c *gin.Context) {
	planSID := c.Param("id")

	var req UpdateRatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update rate plan", "plan_id", planSID, "error", err)
		respondBindError(c, err)
		return
	}

	// Gin binding does not descend into the entitlement rows
	for _, ent := range req.Entitlements {
		if err := utils.ValidateStruct(ent); err != nil {
			h.logger.Warnw("invalid entitlement row for update rate plan", "plan_id", planSID, "error", err)
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	cmd := usecases.UpdatePlanCommand{
		PlanSID:         planSID,
		PlanName:        req.PlanName,
		UserType:        req.UserType,
		MonthlyFee:      req.MonthlyFee,
		RenewalRequired: req.RenewalRequired,
		TopupAllowed:    req.TopupAllowed,
		Status:          req.Status,
		Entitlements:    req.Entitlements,
	}

	result, err := h.updatePlanUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Rate plan updated successfully", result)
}

func (h *RatePlanHandler) GetRatePlan(c *gin.Context) {
	result, err := h.getPlanUC.Execute(c.Request.Context(), usecases.GetPlanCommand{
		PlanSID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *RatePlanHandler) ListRatePlans(c *gin.Context) {
	result, err := h.listPlansUC.Execute(c.Request.Context(), usecases.ListPlansCommand{})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *RatePlanHandler) GetPlanStats(c *gin.Context) {
	result, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *RatePlanHandler) DeleteRatePlan(c *gin.Context) {
	err := h.deletePlanUC.Execute(c.Request.Context(), usecases.DeletePlanCommand{
		PlanSID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
