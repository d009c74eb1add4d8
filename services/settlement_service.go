package services

import (
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/splitr-app/splitr-backend/models"
	"github.com/splitr-app/splitr-backend/utils"
)

// SettlementService records settlements and builds settlement views
type SettlementService struct {
	settlementStore SettlementStore
	expenseStore    ExpenseStore
	groupStore      GroupStore
	userStore       UserStore
}

// NewSettlementService creates a new settlement service
func NewSettlementService(settlementStore SettlementStore, expenseStore ExpenseStore, groupStore GroupStore, userStore UserStore) *SettlementService {
	return &SettlementService{
		settlementStore: settlementStore,
		expenseStore:    expenseStore,
		groupStore:      groupStore,
		userStore:       userStore,
	}
}

// CreateSettlement validates and records a payment between two users.
// The acting user must be one of the two parties; for group
// settlements both parties must be members.
func (s *SettlementService) CreateSettlement(userID string, req *models.CreateSettlementRequest) (string, error) {
	if req.Amount <= 0 {
		return "", utils.NewValidationError("amount must be positive")
	}
	if req.PaidByUserID == req.ReceivedByUserID {
		return "", utils.NewValidationError("payer and receiver cannot be the same user")
	}
	if userID != req.PaidByUserID && userID != req.ReceivedByUserID {
		return "", utils.NewAuthorizationError("you must be either the payer or the receiver")
	}

	if req.GroupID != "" {
		group, err := s.groupStore.GetGroup(req.GroupID)
		if err != nil {
			return "", utils.NewInternalError(err.Error())
		}
		if group == nil {
			return "", utils.NewNotFoundError("Group")
		}
		if !group.HasMember(req.PaidByUserID) || !group.HasMember(req.ReceivedByUserID) {
			return "", utils.NewAuthorizationError("both parties must be members of the group")
		}
	}

	settlement := &models.Settlement{
		ID:                uuid.New().String(),
		Amount:            req.Amount,
		Note:              strings.TrimSpace(req.Note),
		Date:              models.NowMillis(),
		PaidByUserID:      req.PaidByUserID,
		ReceivedByUserID:  req.ReceivedByUserID,
		GroupID:           req.GroupID,
		RelatedExpenseIDs: req.RelatedExpenseIDs,
		CreatedBy:         userID,
	}

	if err := s.settlementStore.CreateSettlement(settlement); err != nil {
		return "", utils.NewInternalError(err.Error())
	}

	return settlement.ID, nil
}

// GetUserSettlementData computes the outstanding position against one
// user for the settle-up screen. Settlements are applied with a floor
// at zero on each side, so an overpaying settlement never flips the
// direction of a debt in this view.
func (s *SettlementService) GetUserSettlementData(userID, otherUserID string) (*models.UserSettlementData, error) {
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

	var owed float64  // they owe me
	var owing float64 // I owe them

	for _, exp := range append(myPaid, theirPaid...) {
		if !exp.Involves(userID) || !exp.Involves(otherUserID) {
			continue
		}

		if exp.PaidByUserID == userID {
			if split := exp.SplitFor(otherUserID); split != nil && !split.Paid {
				owed += split.Amount
			}
		}
		if exp.PaidByUserID == otherUserID {
			if split := exp.SplitFor(userID); split != nil && !split.Paid {
				owing += split.Amount
			}
		}
	}

	settlements, err := s.settlementStore.ListPersonalSettlementsBetween(userID, otherUserID)
	if err != nil {
		return nil, utils.NewInternalError(err.Error())
	}

	for _, st := range settlements {
		if st.PaidByUserID == userID && st.ReceivedByUserID == otherUserID {
			// I paid them, so they owe me less
			owed = math.Max(0, owed-st.Amount)
		} else if st.PaidByUserID == otherUserID && st.ReceivedByUserID == userID {
			// They paid me, so I owe them less
			owing = math.Max(0, owing-st.Amount)
		}
	}

	return &models.UserSettlementData{
		Type: "user",
		Counterpart: models.UserSummary{
			ID:       otherUser.ID,
			Name:     otherUser.Name,
			Email:    otherUser.Email,
			ImageURL: otherUser.ImageURL,
		},
		YouAreOwed: owed,
		YouOwe:     owing,
		NetBalance: owed - owing,
	}, nil
}

// GetGroupSettlementData computes, for every other member of the
// group, how much they owe the requesting user and vice versa.
func (s *SettlementService) GetGroupSettlementData(userID, groupID string) (*models.GroupSettlementData, error) {
	group, err := s.groupStore.GetGroup(groupID)
	if err != nil {
		return nil, utils.NewInternalError(err.Error())
	}
	if group == nil {
		return nil, utils.NewNotFoundError("Group")
	}
	if !group.HasMember(userID) {
		return nil, utils.NewAuthorizationError("you are not a member of this group")
	}

	type pairTotals struct {
		owed  float64
		owing float64
	}
	balances := make(map[string]*pairTotals)
	for _, m := range group.Members {
		if m.UserID != userID {
			balances[m.UserID] = &pairTotals{}
		}
	}

	expenses, err := s.expenseStore.ListGroupExpenses(groupID)
	if err != nil {
		return nil, utils.NewInternalError(err.Error())
	}

	for _, exp := range expenses {
		if exp.PaidByUserID == userID {
			// I paid; others may owe me
			for _, split := range exp.Splits {
				if split.UserID != userID && !split.Paid {
					if b, ok := balances[split.UserID]; ok {
						b.owed += split.Amount
					}
				}
			}
		} else if b, ok := balances[exp.PaidByUserID]; ok {
			// Someone else in the group paid; I may owe them
			if split := exp.SplitFor(userID); split != nil && !split.Paid {
				b.owing += split.Amount
			}
		}
	}

	settlements, err := s.settlementStore.ListGroupSettlements(groupID)
	if err != nil {
		return nil, utils.NewInternalError(err.Error())
	}

	for _, st := range settlements {
		// only settlements with me on one side matter here
		if st.PaidByUserID == userID {
			if b, ok := balances[st.ReceivedByUserID]; ok {
				b.owing = math.Max(0, b.owing-st.Amount)
			}
		} else if st.ReceivedByUserID == userID {
			if b, ok := balances[st.PaidByUserID]; ok {
				b.owed = math.Max(0, b.owed-st.Amount)
			}
		}
	}

	memberIDs := make([]string, 0, len(balances))
	for id := range balances {
		memberIDs = append(memberIDs, id)
	}
	users, err := s.userStore.GetUsersByIDs(memberIDs)
	if err != nil {
		return nil, utils.NewInternalError(err.Error())
	}

	list := make([]models.GroupMemberSettlement, 0, len(balances))
	for _, m := range group.Members {
		b, ok := balances[m.UserID]
		if !ok {
			continue
		}
		entry := models.GroupMemberSettlement{
			UserID:     m.UserID,
			Name:       "Unknown",
			YouAreOwed: b.owed,
			YouOwe:     b.owing,
			NetBalance: b.owed - b.owing,
		}
		if u := users[m.UserID]; u != nil {
			entry.Name = u.Name
			entry.ImageURL = u.ImageURL
		}
		list = append(list, entry)
	}

	return &models.GroupSettlementData{
		Type: "group",
		Group: models.GroupSummary{
			ID:          group.ID,
			Name:        group.Name,
			Description: group.Description,
		},
		Balances: list,
	}, nil
}
