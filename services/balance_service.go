package services

import (
	"math"
	"sort"
	"time"

	"github.com/splitr-app/splitr-backend/models"
	"github.com/splitr-app/splitr-backend/utils"
)

// BalanceService computes pairwise and aggregate balances
type BalanceService struct {
	userStore       UserStore
	expenseStore    ExpenseStore
	settlementStore SettlementStore
}

// NewBalanceService creates a new balance service
func NewBalanceService(userStore UserStore, expenseStore ExpenseStore, settlementStore SettlementStore) *BalanceService {
	return &BalanceService{
		userStore:       userStore,
		expenseStore:    expenseStore,
		settlementStore: settlementStore,
	}
}

// GetExpensesBetweenUsers computes the net position between the
// requesting user and one counterparty over their shared personal
// expenses and settlements. The returned balance is signed: positive
// means the other user owes the requester.
func (s *BalanceService) GetExpensesBetweenUsers(userID, otherUserID string) (*models.PairwiseBalance, error) {
	if userID == otherUserID {
		return nil, utils.NewValidationError("cannot query yourself")
	}

	otherUser, err := s.userStore.GetUser(otherUserID)
	if err != nil {
		return nil, utils.NewInternalError(err.Error())
	}
	if otherUser == nil {
		return nil, utils.NewNotFoundError("User")
	}

	myPaid, err := s.expenseStore.ListPersonalExpensesByPayer(userID)
	if err != nil {
		return nil, utils.NewInternalError(err.Error())
	}
	theirPaid, err := s.expenseStore.ListPersonalExpensesByPayer(otherUserID)
	if err != nil {
		return nil, utils.NewInternalError(err.Error())
	}

	// Keep only expenses where both users are involved, as payer or
	// split participant.
	candidates := append(myPaid, theirPaid...)
	expenses := make([]*models.Expense, 0, len(candidates))
	for _, e := range candidates {
		if e.Involves(userID) && e.Involves(otherUserID) {
			expenses = append(expenses, e)
		}
	}

	sort.Slice(expenses, func(i, j int) bool {
		return expenses[i].Date > expenses[j].Date
	})

	settlements, err := s.settlementStore.ListPersonalSettlementsBetween(userID, otherUserID)
	if err != nil {
		return nil, utils.NewInternalError(err.Error())
	}
	sort.Slice(settlements, func(i, j int) bool {
		return settlements[i].Date > settlements[j].Date
	})

	var balance float64

	for _, e := range expenses {
		if e.PaidByUserID == userID {
			if split := e.SplitFor(otherUserID); split != nil && !split.Paid {
				balance += split.Amount // they owe me
			}
		} else {
			if split := e.SplitFor(userID); split != nil && !split.Paid {
				balance -= split.Amount // I owe them
			}
		}
	}

	for _, st := range settlements {
		if st.PaidByUserID == userID {
			balance += st.Amount // I paid them back
		} else {
			balance -= st.Amount // they paid me back
		}
	}

	return &models.PairwiseBalance{
		Expenses:    expenses,
		Settlements: settlements,
		OtherUser: models.UserSummary{
			ID:       otherUser.ID,
			Name:     otherUser.Name,
			Email:    otherUser.Email,
			ImageURL: otherUser.ImageURL,
		},
		Balance: balance,
	}, nil
}

type counterpartyTotals struct {
	owed  float64 // they owe me
	owing float64 // I owe them
}

// GetUserBalance computes the user's total owed/owing position across
// every counterparty, group and personal expenses alike, with a
// per-counterparty breakdown sorted by magnitude.
func (s *BalanceService) GetUserBalance(userID string) (*models.UserBalance, error) {
	allExpenses, err := s.expenseStore.ListExpenses()
	if err != nil {
		return nil, utils.NewInternalError(err.Error())
	}

	var youOwe, youAreOwed float64
	balanceByUser := make(map[string]*counterpartyTotals)

	bucket := func(id string) *counterpartyTotals {
		if _, ok := balanceByUser[id]; !ok {
			balanceByUser[id] = &counterpartyTotals{}
		}
		return balanceByUser[id]
	}

	for _, e := range allExpenses {
		if !e.Involves(userID) {
			continue
		}

		if e.PaidByUserID == userID {
			for _, split := range e.Splits {
				if split.UserID == userID || split.Paid {
					continue
				}
				youAreOwed += split.Amount
				bucket(split.UserID).owed += split.Amount
			}
		} else if split := e.SplitFor(userID); split != nil && !split.Paid {
			youOwe += split.Amount
			bucket(e.PaidByUserID).owing += split.Amount
		}
	}

	settlements, err := s.settlementStore.ListSettlementsByUser(userID)
	if err != nil {
		return nil, utils.NewInternalError(err.Error())
	}

	for _, st := range settlements {
		if st.PaidByUserID == userID {
			youOwe -= st.Amount
			bucket(st.ReceivedByUserID).owing -= st.Amount
		} else if st.ReceivedByUserID == userID {
			youAreOwed -= st.Amount
			bucket(st.PaidByUserID).owed -= st.Amount
		}
	}

	counterpartyIDs := make([]string, 0, len(balanceByUser))
	for id := range balanceByUser {
		counterpartyIDs = append(counterpartyIDs, id)
	}
	users, err := s.userStore.GetUsersByIDs(counterpartyIDs)
	if err != nil {
		return nil, utils.NewInternalError(err.Error())
	}

	youOweList := []models.CounterpartyBalance{}
	youAreOwedByList := []models.CounterpartyBalance{}

	for id, totals := range balanceByUser {
		net := totals.owed - totals.owing
		if net == 0 {
			continue // fully settled, nothing to display
		}

		entry := models.CounterpartyBalance{
			UserID: id,
			Name:   "unknown",
			Amount: math.Abs(net),
		}
		if u := users[id]; u != nil {
			entry.Name = u.Name
			entry.ImageURL = u.ImageURL
		}

		if net > 0 {
			youAreOwedByList = append(youAreOwedByList, entry)
		} else {
			youOweList = append(youOweList, entry)
		}
	}

	sort.Slice(youOweList, func(i, j int) bool {
		return youOweList[i].Amount > youOweList[j].Amount
	})
	sort.Slice(youAreOwedByList, func(i, j int) bool {
		return youAreOwedByList[i].Amount > youAreOwedByList[j].Amount
	})

	return &models.UserBalance{
		YouOwe:       youOwe,
		YouAreOwed:   math.Max(0, youAreOwed),
		TotalBalance: math.Max(0, youAreOwed-youOwe) - math.Max(0, youOwe-youAreOwed),
		OweDetails: models.OweDetails{
			YouOwe:       youOweList,
			YouAreOwedBy: youAreOwedByList,
		},
	}, nil
}

// GetTotalSpent sums the user's own split amounts over every expense
// involving them since the start of the given year.
func (s *BalanceService) GetTotalSpent(userID string, year int) (float64, error) {
	startOfYear := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).UnixMilli()

	expenses, err := s.expenseStore.ListExpensesSince(startOfYear)
	if err != nil {
		return 0, utils.NewInternalError(err.Error())
	}

	var totalSpent float64
	for _, e := range expenses {
		if !e.Involves(userID) {
			continue
		}
		if split := e.SplitFor(userID); split != nil {
			totalSpent += split.Amount
		}
	}

	return totalSpent, nil
}

// GetMonthlySpending buckets the user's own split amounts by calendar
// month for the given year. Every month is present, zero or not.
func (s *BalanceService) GetMonthlySpending(userID string, year int) ([]models.MonthlySpending, error) {
	startOfYear := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).UnixMilli()

	expenses, err := s.expenseStore.ListExpensesSince(startOfYear)
	if err != nil {
		return nil, utils.NewInternalError(err.Error())
	}

	monthlyTotals := make(map[int64]float64, 12)
	for m := time.January; m <= time.December; m++ {
		monthStart := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
		monthlyTotals[monthStart] = 0
	}

	for _, e := range expenses {
		if !e.Involves(userID) {
			continue
		}
		split := e.SplitFor(userID)
		if split == nil {
			continue
		}
		d := time.UnixMilli(e.Date).UTC()
		monthStart := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC).UnixMilli()
		monthlyTotals[monthStart] += split.Amount
	}

	result := make([]models.MonthlySpending, 0, len(monthlyTotals))
	for month, total := range monthlyTotals {
		result = append(result, models.MonthlySpending{Month: month, Total: total})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Month < result[j].Month
	})

	return result, nil
}
