package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/splitr-app/splitr-backend/services"
	"github.com/splitr-app/splitr-backend/utils"
)

// BalanceHandler handles balance-related HTTP requests
type BalanceHandler struct {
	balanceService *services.BalanceService
}

// NewBalanceHandler creates a new balance handler
func NewBalanceHandler(balanceService *services.BalanceService) *BalanceHandler {
	return &BalanceHandler{balanceService: balanceService}
}

// GetUserBalance handles GET /balance
func (h *BalanceHandler) GetUserBalance(c *gin.Context) {
	balance, err := h.balanceService.GetUserBalance(CurrentUserID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, balance)
}

// GetExpensesBetweenUsers handles GET /balance/with/:userId
func (h *BalanceHandler) GetExpensesBetweenUsers(c *gin.Context) {
	result, err := h.balanceService.GetExpensesBetweenUsers(CurrentUserID(c), c.Param("userId"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, result)
}

// yearParam reads the optional ?year= query, defaulting to the
// current year.
func yearParam(c *gin.Context) int {
	if raw := c.Query("year"); raw != "" {
		if year, err := strconv.Atoi(raw); err == nil {
			return year
		}
	}
	return time.Now().Year()
}

// GetTotalSpent handles GET /spending/total
func (h *BalanceHandler) GetTotalSpent(c *gin.Context) {
	total, err := h.balanceService.GetTotalSpent(CurrentUserID(c), yearParam(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"totalSpent": total})
}

// GetMonthlySpending handles GET /spending/monthly
func (h *BalanceHandler) GetMonthlySpending(c *gin.Context) {
	monthly, err := h.balanceService.GetMonthlySpending(CurrentUserID(c), yearParam(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, monthly)
}
