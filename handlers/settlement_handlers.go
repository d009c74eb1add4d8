package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/splitr-app/splitr-backend/models"
	"github.com/splitr-app/splitr-backend/services"
	"github.com/splitr-app/splitr-backend/utils"
)

// SettlementHandler handles settlement-related HTTP requests
type SettlementHandler struct {
	settlementService *services.SettlementService
}

// NewSettlementHandler creates a new settlement handler
func NewSettlementHandler(settlementService *services.SettlementService) *SettlementHandler {
	return &SettlementHandler{settlementService: settlementService}
}

// CreateSettlement handles POST /settlements/create
func (h *SettlementHandler) CreateSettlement(c *gin.Context) {
	var request models.CreateSettlementRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewValidationError("invalid request"))
		return
	}

	settlementID, err := h.settlementService.CreateSettlement(CurrentUserID(c), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.CreateSettlementResponse{SettlementID: settlementID})
}

// GetSettlementData handles GET /settlements/:entityType/:entityId
func (h *SettlementHandler) GetSettlementData(c *gin.Context) {
	userID := CurrentUserID(c)
	entityID := c.Param("entityId")

	switch c.Param("entityType") {
	case "user":
		data, err := h.settlementService.GetUserSettlementData(userID, entityID)
		if err != nil {
			utils.HandleError(c, err)
			return
		}
		utils.HandleSuccess(c, data)
	case "group":
		data, err := h.settlementService.GetGroupSettlementData(userID, entityID)
		if err != nil {
			utils.HandleError(c, err)
			return
		}
		utils.HandleSuccess(c, data)
	default:
		utils.HandleError(c, utils.NewValidationError("invalid entity type; expected 'user' or 'group'"))
	}
}
