package routes

import (
	"github.com/splitr-app/splitr-backend/handlers"
	"github.com/splitr-app/splitr-backend/services"

	"github.com/gin-gonic/gin"
)

// Handlers bundles every HTTP handler wired by SetupRoutes.
type Handlers struct {
	Balance    *handlers.BalanceHandler
	Expense    *handlers.ExpenseHandler
	Settlement *handlers.SettlementHandler
	Group      *handlers.GroupHandler
	Contact    *handlers.ContactHandler
}

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine, h *Handlers, userStore services.UserStore) {
	v1 := router.Group("/api/v1")
	v1.Use(handlers.RequireUser(userStore))
	{
		// Balance endpoints
		v1.GET("/balance", h.Balance.GetUserBalance)
		v1.GET("/balance/with/:userId", h.Balance.GetExpensesBetweenUsers)

		// Spending endpoints
		v1.GET("/spending/total", h.Balance.GetTotalSpent)
		v1.GET("/spending/monthly", h.Balance.GetMonthlySpending)

		// Expense endpoints
		v1.POST("/expenses/create", h.Expense.CreateExpense)
		v1.POST("/expenses/remove", h.Expense.DeleteExpense)

		// Settlement endpoints
		v1.POST("/settlements/create", h.Settlement.CreateSettlement)
		v1.GET("/settlements/:entityType/:entityId", h.Settlement.GetSettlementData)

		// Group endpoints
		v1.GET("/groups", h.Group.GetUserGroups)
		v1.POST("/groups/create", h.Group.CreateGroup)
		v1.GET("/groups/:id/ledger", h.Group.GetGroupLedger)
		v1.GET("/groups/:id/export", h.Group.ExportGroupLedger)

		// Contact endpoints
		v1.GET("/contacts", h.Contact.GetAllContacts)
	}
}
