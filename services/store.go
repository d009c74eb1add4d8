package services

import "github.com/splitr-app/splitr-backend/models"

// The engine consumes the record store through these interfaces; the
// repository package provides the Postgres implementation and tests
// inject in-memory fakes. Lookup methods return (nil, nil) when the
// record does not exist; errors are reserved for store failures.

// UserStore supplies read-only user lookups.
type UserStore interface {
	GetUser(id string) (*models.User, error)
	GetUsersByIDs(ids []string) (map[string]*models.User, error)
}

// GroupStore supplies group lookups and creation.
type GroupStore interface {
	GetGroup(id string) (*models.Group, error)
	CreateGroup(group *models.Group) error
	ListGroups() ([]*models.Group, error)
}

// ExpenseStore supplies expense persistence and the filtered listings
// the balance calculators need. "Personal" means groupId is absent.
type ExpenseStore interface {
	CreateExpense(expense *models.Expense) error
	GetExpense(id string) (*models.Expense, error)
	DeleteExpense(id string) error
	ListExpenses() ([]*models.Expense, error)
	ListExpensesSince(start int64) ([]*models.Expense, error)
	ListGroupExpenses(groupID string) ([]*models.Expense, error)
	ListPersonalExpensesByPayer(userID string) ([]*models.Expense, error)
	ListPersonalExpenses() ([]*models.Expense, error)
}

// SettlementStore supplies settlement persistence and filtered
// listings, plus the patch primitive the expense deletion cascade
// uses.
type SettlementStore interface {
	CreateSettlement(settlement *models.Settlement) error
	DeleteSettlement(id string) error
	ListGroupSettlements(groupID string) ([]*models.Settlement, error)
	ListPersonalSettlementsBetween(userA, userB string) ([]*models.Settlement, error)
	ListSettlementsByUser(userID string) ([]*models.Settlement, error)
	ListSettlementsRelatedTo(expenseID string) ([]*models.Settlement, error)
	SetRelatedExpenseIDs(id string, expenseIDs []string) error
}
