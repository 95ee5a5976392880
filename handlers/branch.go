package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"easyappointment/models"
	"easyappointment/services/branch"
	"easyappointment/utils"
)

// BranchHandler exposes branch endpoints.
type BranchHandler struct {
	Service branch.BranchService
}

func NewBranchHandler(svc branch.BranchService) *BranchHandler {
	return &BranchHandler{Service: svc}
}

func (h *BranchHandler) CreateBranchHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "details": err.Error()})
		return
	}

	b, err := h.Service.CreateBranch(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Branch creation failed", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *BranchHandler) GetBranchHandler(c *gin.Context) {
	b, err := h.Service.GetBranch(c.Request.Context(), c.Param("branchID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
