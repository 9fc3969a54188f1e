package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rasu25115/pickme/internal/application/catalog/usecases"
	"github.com/rasu25115/pickme/internal/shared/logger"
	"github.com/rasu25115/pickme/internal/shared/utils"
)

// APIHandler serves the catalog CRUD endpoints.
type APIHandler struct {
	createAPIUC *usecases.CreateAPIUseCase
	updateAPIUC *usecases.UpdateAPIUseCase
	deleteAPIUC *usecases.DeleteAPIUseCase
	getAPIUC    *usecases.GetAPIUseCase
	listAPIsUC  *usecases.ListAPIsUseCase
	statsUC     *usecases.GetCatalogStatsUseCase
	logger      logger.Interface
}

func NewAPIHandler(
	createAPIUC *usecases.CreateAPIUseCase,
	updateAPIUC *usecases.UpdateAPIUseCase,
	deleteAPIUC *usecases.DeleteAPIUseCase,
	getAPIUC *usecases.GetAPIUseCase,
	listAPIsUC *usecases.ListAPIsUseCase,
	statsUC *usecases.GetCatalogStatsUseCase,
) *APIHandler {
	return &APIHandler{
		createAPIUC: createAPIUC,
		updateAPIUC: updateAPIUC,
		deleteAPIUC: deleteAPIUC,
		getAPIUC:    getAPIUC,
		listAPIsUC:  listAPIsUC,
		statsUC:     statsUC,
		logger:      logger.NewLogger(),
	}
}

type CreateAPIRequest struct {
	Name                string `json:"name" binding:"required,max=100"`
	Type                string `json:"type" binding:"required,oneof=FREE PRO DISABLED"`
	GlobalBuyPrice      uint64 `json:"global_buy_price"`
	GlobalSellPrice     uint64 `json:"global_sell_price"`
	DefaultCreditCharge uint64 `json:"default_credit_charge"`
	Description         string `json:"description" binding:"max=500"`
}

type UpdateAPIRequest struct {
	Name                string `json:"name" binding:"required,max=100"`
	Type                string `json:"type" binding:"required,oneof=FREE PRO DISABLED"`
	GlobalBuyPrice      uint64 `json:"global_buy_price"`
	GlobalSellPrice     uint64 `json:"global_sell_price"`
	DefaultCreditCharge uint64 `json:"default_credit_charge"`
	Description         string `json:"description" binding:"max=500"`
}

func (h *APIHandler) CreateAPI(c *gin.Context) {
	var req CreateAPIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create api", "error", err)
		respondBindError(c, err)
		return
	}

	cmd := usecases.CreateAPICommand{
		Name:                req.Name,
		Type:                req.Type,
		GlobalBuyPrice:      req.GlobalBuyPrice,
		GlobalSellPrice:     req.GlobalSellPrice,
		DefaultCreditCharge: req.DefaultCreditCharge,
		Description:         req.Description,
	}

	result, err := h.createAPIUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "API created successfully")
}

func (h *APIHandler) UpdateAPI(c *gin.Context) {
	apiSID := c.Param("id")

	var req UpdateAPIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update api", "api_id", apiSID, "error", err)
		respondBindError(c, err)
		return
	}

	cmd := usecases.UpdateAPICommand{
		APISID:              apiSID,
		Name:                req.Name,
		Type:                req.Type,
		GlobalBuyPrice:      req.GlobalBuyPrice,
		GlobalSellPrice:     req.GlobalSellPrice,
		DefaultCreditCharge: req.DefaultCreditCharge,
		Description:         req.Description,
	}

	result, err := h.updateAPIUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "API updated successfully", result)
}

func (h *APIHandler) GetAPI(c *gin.Context) {
	result, err := h.getAPIUC.Execute(c.Request.Context(), usecases.GetAPICommand{
		APISID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *APIHandler) ListAPIs(c *gin.Context) {
	result, err := h.listAPIsUC.Execute(c.Request.Context(), usecases.ListAPIsCommand{
		Search: c.Query("search"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *APIHandler) GetCatalogStats(c *gin.Context) {
	result, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *APIHandler) DeleteAPI(c *gin.Context) {
	err := h.deleteAPIUC.Execute(c.Request.Context(), usecases.DeleteAPICommand{
		APISID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
