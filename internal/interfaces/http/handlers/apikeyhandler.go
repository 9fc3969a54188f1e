package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rasu25115/pickme/internal/application/credential/usecases"
	"github.com/rasu25115/pickme/internal/shared/logger"
	"github.com/rasu25115/pickme/internal/shared/utils"
)

// APIKeyHandler serves the provider credential endpoints. All read paths
// return masked secrets; RevealAPIKey is the single exception.
type APIKeyHandler struct {
	createKeyUC *usecases.CreateAPIKeyUseCase
	updateKeyUC *usecases.UpdateAPIKeyUseCase
	deleteKeyUC *usecases.DeleteAPIKeyUseCase
	toggleUC    *usecases.ToggleKeyStatusUseCase
	listKeysUC  *usecases.ListAPIKeysUseCase
	revealUC    *usecases.RevealAPIKeyUseCase
	statsUC     *usecases.GetKeyStatsUseCase
	usageUC     *usecases.RecordKeyUsageUseCase
	logger      logger.Interface
}

func NewAPIKeyHandler(
	createKeyUC *usecases.CreateAPIKeyUseCase,
	updateKeyUC *usecases.UpdateAPIKeyUseCase,
	deleteKeyUC *usecases.DeleteAPIKeyUseCase,
	toggleUC *usecases.ToggleKeyStatusUseCase,
	listKeysUC *usecases.ListAPIKeysUseCase,
	revealUC *usecases.RevealAPIKeyUseCase,
	statsUC *usecases.GetKeyStatsUseCase,
	usageUC *usecases.RecordKeyUsageUseCase,
) *APIKeyHandler {
	return &APIKeyHandler{
		createKeyUC: createKeyUC,
		updateKeyUC: updateKeyUC,
		deleteKeyUC: deleteKeyUC,
		toggleUC:    toggleUC,
		listKeysUC:  listKeysUC,
		revealUC:    revealUC,
		statsUC:     statsUC,
		usageUC:     usageUC,
		logger:      logger.NewLogger(),
	}
}

type CreateAPIKeyRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Provider string `json:"provider" binding:"omitempty,oneof=Signzy Surepass TrueCaller EmailValidator Custom"`
	Secret   string `json:"secret" binding:"required,max=500"`
	Status   string `json:"status" binding:"omitempty,oneof=Active Inactive"`
}

type UpdateAPIKeyRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Provider string `json:"provider" binding:"omitempty,oneof=Signzy Surepass TrueCaller EmailValidator Custom"`
	Secret   string `json:"secret" binding:"required,max=500"`
	Status   string `json:"status" binding:"required,oneof=Active Inactive"`
}

func (h *APIKeyHandler) CreateAPIKey(c *gin.Context) {
	var req CreateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create api key", "error", err)
		respondBindError(c, err)
		return
	}

	cmd := usecases.CreateAPIKeyCommand{
		Name:     req.Name,
		Provider: req.Provider,
		Secret:   req.Secret,
		Status:   req.Status,
	}

	result, err := h.createKeyUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "API key created successfully")
}

func (h *APIKeyHandler) UpdateAPIKey(c *gin.Context) {
	keySID := c.Param("id")

	var req UpdateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update api key", "key_id", keySID, "error", err)
		respondBindError(c, err)
		return
	}

	cmd := usecases.UpdateAPIKeyCommand{
		KeySID:   keySID,
		Name:     req.Name,
		Provider: req.Provider,
		Secret:   req.Secret,
		Status:   req.Status,
	}

	result, err := h.updateKeyUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "API key updated successfully", result)
}

func (h *APIKeyHandler) ListAPIKeys(c *gin.Context) {
	result, err := h.listKeysUC.Execute(c.Request.Context(), usecases.ListAPIKeysCommand{
		Search: c.Query("search"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *APIKeyHandler) ToggleAPIKeyStatus(c *gin.Context) {
	result, err := h.toggleUC.Execute(c.Request.Context(), usecases.ToggleKeyStatusCommand{
		KeySID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "API key status updated", result)
}

func (h *APIKeyHandler) RevealAPIKey(c *gin.Context) {
	result, err := h.revealUC.Execute(c.Request.Context(), usecases.RevealAPIKeyCommand{
		KeySID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *APIKeyHandler) RecordAPIKeyUsage(c *gin.Context) {
	result, err := h.usageUC.Execute(c.Request.Context(), usecases.RecordKeyUsageCommand{
		KeySID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "API key usage recorded", result)
}

func (h *APIKeyHandler) GetKeyStats(c *gin.Context) {
	result, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *APIKeyHandler) DeleteAPIKey(c *gin.Context) {
	err := h.deleteKeyUC.Execute(c.Request.Context(), usecases.DeleteAPIKeyCommand{
		KeySID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
