package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"easyappointment/models"
	"easyappointment/services/provider"
	"easyappointment/utils"
)

// ProviderHandler exposes provider endpoints.
type ProviderHandler struct {
	Service provider.ProviderService
}

func NewProviderHandler(svc provider.ProviderService) *ProviderHandler {
	return &ProviderHandler{Service: svc}
}

// RegisterProviderHandler creates a provider at a branch. Slot generation
// runs in the background: the provider may briefly have no queryable slots
// after this returns.
func (h *ProviderHandler) RegisterProviderHandler(c *gin.Context) {
	logger := utils.GetLogger()
	branchID := c.Param("branchID")

	var req models.CreateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid provider registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "details": err.Error()})
		return
	}

	prov, err := h.Service.CreateProvider(c.Request.Context(), branchID, req)
	if err != nil {
		logger.Warn("Provider registration failed", zap.String("branchId", branchID), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, prov)
}

func (h *ProviderHandler) GetProviderByIDHandler(c *gin.Context) {
	prov, err := h.Service.GetProvider(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prov)
}

func (h *ProviderHandler) ListProvidersHandler(c *gin.Context) {
	providers, err := h.Service.ListProvidersByBranch(c.Request.Context(), c.Param("branchID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": providers})
}

func (h *ProviderHandler) DeleteProviderHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.Service.DeleteProvider(c.Request.Context(), id); err != nil {
		logger.Warn("Provider delete failed", zap.String("id", id), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Provider deleted"})
}
