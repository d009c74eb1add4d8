// repository/expense_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/splitr-app/splitr-backend/models"
)

// ExpenseRepository handles database operations for expenses
type ExpenseRepository struct {
	DB *sql.DB
}

// NewExpenseRepository creates a new ExpenseRepository
func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{DB: db}
}

// CreateExpense saves an expense and its splits
func (r *ExpenseRepository) CreateExpense(expense *models.Expense) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO expenses
         (id, description, amount, category, date, paid_by_user_id, split_type, group_id, created_by)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		expense.ID, expense.Description, expense.Amount, expense.Category, expense.Date,
		expense.PaidByUserID, expense.SplitType, nullableString(expense.GroupID), expense.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %v", err)
	}

	for _, split := range expense.Splits {
		_, err = tx.Exec(
			"INSERT INTO expense_splits (expense_id, user_id, amount, paid) VALUES ($1, $2, $3, $4)",
			expense.ID, split.UserID, split.Amount, split.Paid,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense split: %v", err)
		}
	}

	return tx.Commit()
}

// GetExpense retrieves an expense with its splits. Returns (nil, nil)
// when no such expense exists.
func (r *ExpenseRepository) GetExpense(id string) (*models.Expense, error) {
	var expense models.Expense
	var groupID sql.NullString

	err := r.DB.QueryRow(
		`SELECT id, description, amount, category, date, paid_by_user_id, split_type, group_id, created_by
         FROM expenses WHERE id = $1`,
		id,
	).Scan(&expense.ID, &expense.Description, &expense.Amount, &expense.Category,
		&expense.Date, &expense.PaidByUserID, &expense.SplitType, &groupID, &expense.CreatedBy)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense: %v", err)
	}

	if groupID.Valid {
		expense.GroupID = groupID.String
	}

	splits, err := r.loadSplits(expense.ID)
	if err != nil {
		return nil, err
	}
	expense.Splits = splits

	return &expense, nil
}

// DeleteExpense removes an expense (splits cascade in the schema)
func (r *ExpenseRepository) DeleteExpense(id string) error {
	_, err := r.DB.Exec("DELETE FROM expenses WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %v", err)
	}
	return nil
}

// ListExpenses retrieves every expense
func (r *ExpenseRepository) ListExpenses() ([]*models.Expense, error) {
	return r.queryExpenses(
		`SELECT id, description, amount, category, date, paid_by_user_id, split_type, group_id, created_by
         FROM expenses ORDER BY date ASC`)
}

// ListExpensesSince retrieves every expense dated at or after start
func (r *ExpenseRepository) ListExpensesSince(start int64) ([]*models.Expense, error) {
	return r.queryExpenses(
		`SELECT id, description, amount, category, date, paid_by_user_id, split_type, group_id, created_by
         FROM expenses WHERE date >= $1 ORDER BY date ASC`,
		start)
}

// ListGroupExpenses retrieves all expenses tagged with a group
func (r *ExpenseRepository) ListGroupExpenses(groupID string) ([]*models.Expense, error) {
	return r.queryExpenses(
		`SELECT id, description, amount, category, date, paid_by_user_id, split_type, group_id, created_by
         FROM expenses WHERE group_id = $1 ORDER BY date ASC`,
		groupID)
}

// ListPersonalExpensesByPayer retrieves non-group expenses paid by a user
func (r *ExpenseRepository) ListPersonalExpensesByPayer(userID string) ([]*models.Expense, error) {
	return r.queryExpenses(
		`SELECT id, description, amount, category, date, paid_by_user_id, split_type, group_id, created_by
         FROM expenses WHERE paid_by_user_id = $1 AND group_id IS NULL ORDER BY date ASC`,
		userID)
}

// ListPersonalExpenses retrieves all non-group expenses
func (r *ExpenseRepository) ListPersonalExpenses() ([]*models.Expense, error) {
	return r.queryExpenses(
		`SELECT id, description, amount, category, date, paid_by_user_id, split_type, group_id, created_by
         FROM expenses WHERE group_id IS NULL ORDER BY date ASC`)
}

func (r *ExpenseRepository) queryExpenses(query string, args ...interface{}) ([]*models.Expense, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %v", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		var expense models.Expense
		var groupID sql.NullString

		err = rows.Scan(&expense.ID, &expense.Description, &expense.Amount, &expense.Category,
			&expense.Date, &expense.PaidByUserID, &expense.SplitType, &groupID, &expense.CreatedBy)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %v", err)
		}

		if groupID.Valid {
			expense.GroupID = groupID.String
		}

		expenses = append(expenses, &expense)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, expense := range expenses {
		splits, err := r.loadSplits(expense.ID)
		if err != nil {
			return nil, err
		}
		expense.Splits = splits
	}

	return expenses, nil
}

func (r *ExpenseRepository) loadSplits(expenseID string) ([]models.Split, error) {
	rows, err := r.DB.Query(
		"SELECT user_id, amount, paid FROM expense_splits WHERE expense_id = $1",
		expenseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense splits: %v", err)
	}
	defer rows.Close()

	var splits []models.Split
	for rows.Next() {
		var split models.Split
		if err := rows.Scan(&split.UserID, &split.Amount, &split.Paid); err != nil {
			return nil, fmt.Errorf("failed to scan expense split: %v", err)
		}
		splits = append(splits, split)
	}

	return splits, rows.Err()
}

// nullableString maps an empty string to a SQL NULL
func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
