// repository/settlement_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/splitr-app/splitr-backend/models"
)

// SettlementRepository handles database operations for settlements
type SettlementRepository struct {
	DB *sql.DB
}

// NewSettlementRepository creates a new SettlementRepository
func NewSettlementRepository(db *sql.DB) *SettlementRepository {
	return &SettlementRepository{DB: db}
}

// CreateSettlement saves a settlement and its related-expense links
func (r *SettlementRepository) CreateSettlement(settlement *models.Settlement) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO settlements
         (id, amount, note, date, paid_by_user_id, received_by_user_id, group_id, created_by)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		settlement.ID, settlement.Amount, settlement.Note, settlement.Date,
		settlement.PaidByUserID, settlement.ReceivedByUserID,
		nullableString(settlement.GroupID), settlement.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert settlement: %v", err)
	}

	for _, expenseID := range settlement.RelatedExpenseIDs {
		_, err = tx.Exec(
			"INSERT INTO settlement_related_expenses (settlement_id, expense_id) VALUES ($1, $2)",
			settlement.ID, expenseID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert settlement expense link: %v", err)
		}
	}

	return tx.Commit()
}

// DeleteSettlement removes a settlement (links cascade in the schema)
func (r *SettlementRepository) DeleteSettlement(id string) error {
	_, err := r.DB.Exec("DELETE FROM settlements WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete settlement: %v", err)
	}
	return nil
}

// ListGroupSettlements retrieves all settlements tagged with a group
func (r *SettlementRepository) ListGroupSettlements(groupID string) ([]*models.Settlement, error) {
	return r.querySettlements(
		`SELECT id, amount, note, date, paid_by_user_id, received_by_user_id, group_id, created_by
         FROM settlements WHERE group_id = $1 ORDER BY date ASC`,
		groupID)
}

// ListPersonalSettlementsBetween retrieves non-group settlements
// between two users, in either direction
func (r *SettlementRepository) ListPersonalSettlementsBetween(userA, userB string) ([]*models.Settlement, error) {
	return r.querySettlements(
		`SELECT id, amount, note, date, paid_by_user_id, received_by_user_id, group_id, created_by
         FROM settlements
         WHERE group_id IS NULL
           AND ((paid_by_user_id = $1 AND received_by_user_id = $2)
             OR (paid_by_user_id = $2 AND received_by_user_id = $1))
         ORDER BY date ASC`,
		userA, userB)
}

// ListSettlementsByUser retrieves every settlement the user is a
// party to, group and personal alike
func (r *SettlementRepository) ListSettlementsByUser(userID string) ([]*models.Settlement, error) {
	return r.querySettlements(
		`SELECT id, amount, note, date, paid_by_user_id, received_by_user_id, group_id, created_by
         FROM settlements
         WHERE paid_by_user_id = $1 OR received_by_user_id = $1
         ORDER BY date ASC`,
		userID)
}

// ListSettlementsRelatedTo retrieves every settlement whose
// related-expense set references the given expense
func (r *SettlementRepository) ListSettlementsRelatedTo(expenseID string) ([]*models.Settlement, error) {
	return r.querySettlements(
		`SELECT s.id, s.amount, s.note, s.date, s.paid_by_user_id, s.received_by_user_id, s.group_id, s.created_by
         FROM settlements s
         JOIN settlement_related_expenses sre ON sre.settlement_id = s.id
         WHERE sre.expense_id = $1`,
		expenseID)
}

// SetRelatedExpenseIDs replaces a settlement's related-expense set
func (r *SettlementRepository) SetRelatedExpenseIDs(id string, expenseIDs []string) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec("DELETE FROM settlement_related_expenses WHERE settlement_id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to clear settlement expense links: %v", err)
	}

	for _, expenseID := range expenseIDs {
		_, err = tx.Exec(
			"INSERT INTO settlement_related_expenses (settlement_id, expense_id) VALUES ($1, $2)",
			id, expenseID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert settlement expense link: %v", err)
		}
	}

	return tx.Commit()
}

func (r *SettlementRepository) querySettlements(query string, args ...interface{}) ([]*models.Settlement, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get settlements: %v", err)
	}
	defer rows.Close()

	var settlements []*models.Settlement
	for rows.Next() {
		var settlement models.Settlement
		var groupID sql.NullString

		err = rows.Scan(&settlement.ID, &settlement.Amount, &settlement.Note, &settlement.Date,
			&settlement.PaidByUserID, &settlement.ReceivedByUserID, &groupID, &settlement.CreatedBy)
		if err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %v", err)
		}

		if groupID.Valid {
			settlement.GroupID = groupID.String
		}

		settlements = append(settlements, &settlement)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, settlement := range settlements {
		related, err := r.loadRelatedExpenseIDs(settlement.ID)
		if err != nil {
			return nil, err
		}
		settlement.RelatedExpenseIDs = related
	}

	return settlements, nil
}

func (r *SettlementRepository) loadRelatedExpenseIDs(settlementID string) ([]string, error) {
	rows, err := r.DB.Query(
		"SELECT expense_id FROM settlement_related_expenses WHERE settlement_id = $1",
		settlementID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get settlement expense links: %v", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var expenseID string
		if err := rows.Scan(&expenseID); err != nil {
			return nil, fmt.Errorf("failed to scan settlement expense link: %v", err)
		}
		ids = append(ids, expenseID)
	}

	return ids, rows.Err()
}
