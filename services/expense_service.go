package services

import (
	"strings"

	"github.com/google/uuid"
	"github.com/splitr-app/splitr-backend/models"
	"github.com/splitr-app/splitr-backend/utils"
)

// ExpenseService records and deletes expenses
type ExpenseService struct {
	expenseStore    ExpenseStore
	settlementStore SettlementStore
	groupStore      GroupStore
	splitService    *SplitService
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseStore ExpenseStore, settlementStore SettlementStore, groupStore GroupStore, splitService *SplitService) *ExpenseService {
	return &ExpenseService{
		expenseStore:    expenseStore,
		settlementStore: settlementStore,
		groupStore:      groupStore,
		splitService:    splitService,
	}
}

// CreateExpense validates and records a new expense. For group
// expenses the payer must be a member of the group. The splits must
// sum to the expense amount within tolerance.
func (s *ExpenseService) CreateExpense(userID string, req *models.CreateExpenseRequest) (string, error) {
	if err := utils.ValidateRequired(req.Description, "description"); err != nil {
		return "", err
	}
	if err := utils.ValidatePositive(req.Amount, "amount"); err != nil {
		return "", err
	}

	if req.GroupID != "" {
		group, err := s.groupStore.GetGroup(req.GroupID)
		if err != nil {
			return "", utils.NewInternalError(err.Error())
		}
		if group == nil {
			return "", utils.NewNotFoundError("Group")
		}
		if !group.HasMember(req.PaidByUserID) {
			return "", utils.NewAuthorizationError("payer is not a member of this group")
		}
	}

	splits := make([]models.Split, len(req.Splits))
	for i, in := range req.Splits {
		splits[i] = models.Split{UserID: in.UserID, Amount: in.Amount, Paid: in.Paid}
	}

	if err := s.splitService.ValidateSplits(req.Amount, splits); err != nil {
		return "", err
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = utils.DefaultCategory
	}

	expense := &models.Expense{
		ID:           uuid.New().String(),
		Description:  req.Description,
		Amount:       req.Amount,
		Category:     category,
		Date:         req.Date,
		PaidByUserID: req.PaidByUserID,
		SplitType:    req.SplitType,
		Splits:       splits,
		GroupID:      req.GroupID,
		CreatedBy:    userID,
	}

	if err := s.expenseStore.CreateExpense(expense); err != nil {
		return "", utils.NewInternalError(err.Error())
	}

	return expense.ID, nil
}

// DeleteExpense removes an expense. Only the creator or the payer may
// delete. Settlements referencing the expense are patched: the id is
// removed from relatedExpenseIds and the settlement itself is deleted
// when that leaves the reference set empty.
func (s *ExpenseService) DeleteExpense(userID, expenseID string) error {
	expense, err := s.expenseStore.GetExpense(expenseID)
	if err != nil {
		return utils.NewInternalError(err.Error())
	}
	if expense == nil {
		return utils.NewNotFoundError("Expense")
	}

	if expense.CreatedBy != userID && expense.PaidByUserID != userID {
		return utils.NewAuthorizationError("you don't have permission to delete this expense")
	}

	related, err := s.settlementStore.ListSettlementsRelatedTo(expenseID)
	if err != nil {
		return utils.NewInternalError(err.Error())
	}

	for _, settlement := range related {
		remaining := make([]string, 0, len(settlement.RelatedExpenseIDs))
		for _, id := range settlement.RelatedExpenseIDs {
			if id != expenseID {
				remaining = append(remaining, id)
			}
		}

		if len(remaining) == 0 {
			// this was the only related expense
			if err := s.settlementStore.DeleteSettlement(settlement.ID); err != nil {
				return utils.NewInternalError(err.Error())
			}
		} else {
			if err := s.settlementStore.SetRelatedExpenseIDs(settlement.ID, remaining); err != nil {
				return utils.NewInternalError(err.Error())
			}
		}
	}

	if err := s.expenseStore.DeleteExpense(expenseID); err != nil {
		return utils.NewInternalError(err.Error())
	}

	return nil
}
