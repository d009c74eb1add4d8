package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/splitr-app/splitr-backend/models"
	"github.com/splitr-app/splitr-backend/services"
	"github.com/splitr-app/splitr-backend/utils"
)

// ExpenseHandler handles expense-related HTTP requests
type ExpenseHandler struct {
	expenseService *services.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// CreateExpense handles POST /expenses/create
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var request models.CreateExpenseRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewValidationError("invalid request"))
		return
	}

	expenseID, err := h.expenseService.CreateExpense(CurrentUserID(c), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.CreateExpenseResponse{ExpenseID: expenseID})
}

// DeleteExpense handles POST /expenses/remove
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	var request models.DeleteExpenseRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewValidationError("invalid request"))
		return
	}

	if err := h.expenseService.DeleteExpense(CurrentUserID(c), request.ExpenseID); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.DeleteExpenseResponse{Success: true})
}
