package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/splitr-app/splitr-backend/models"
	"github.com/splitr-app/splitr-backend/utils"
)

// GroupService handles group creation and the group ledger computation
type GroupService struct {
	groupStore      GroupStore
	userStore       UserStore
	expenseStore    ExpenseStore
	settlementStore SettlementStore
}

// NewGroupService creates a new group service
func NewGroupService(groupStore GroupStore, userStore UserStore, expenseStore ExpenseStore, settlementStore SettlementStore) *GroupService {
	return &GroupService{
		groupStore:      groupStore,
		userStore:       userStore,
		expenseStore:    expenseStore,
		settlementStore: settlementStore,
	}
}

// CreateGroup creates a group with the given members. The creator is
// always added as an admin member; duplicate member ids collapse.
func (s *GroupService) CreateGroup(userID, name, description string, memberIDs []string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", utils.NewValidationError("group name cannot be empty")
	}

	unique := make([]string, 0, len(memberIDs)+1)
	seen := make(map[string]bool, len(memberIDs)+1)
	for _, id := range append([]string{userID}, memberIDs...) {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	for _, id := range unique {
		u, err := s.userStore.GetUser(id)
		if err != nil {
			return "", utils.NewInternalError(err.Error())
		}
		if u == nil {
			return "", utils.NewNotFoundError(fmt.Sprintf("User %s", id))
		}
	}

	now := models.NowMillis()
	members := make([]models.GroupMember, len(unique))
	for i, id := range unique {
		role := utils.RoleMember
		if id == userID {
			role = utils.RoleAdmin
		}
		members[i] = models.GroupMember{UserID: id, Role: role, JoinedAt: now}
	}

	group := &models.Group{
		ID:          uuid.New().String(),
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedBy:   userID,
		Members:     members,
	}

	if err := s.groupStore.CreateGroup(group); err != nil {
		return "", utils.NewInternalError(err.Error())
	}

	return group.ID, nil
}

// GetGroupLedger computes the full pairwise debt matrix and per-member
// net totals for a group, then nets opposing debts between each pair.
func (s *GroupService) GetGroupLedger(userID, groupID string) (*models.GroupLedger, error) {
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

	expenses, err := s.expenseStore.ListGroupExpenses(groupID)
	if err != nil {
		return nil, utils.NewInternalError(err.Error())
	}
	settlements, err := s.settlementStore.ListGroupSettlements(groupID)
	if err != nil {
		return nil, utils.NewInternalError(err.Error())
	}

	memberIDs := make([]string, len(group.Members))
	for i, m := range group.Members {
		memberIDs[i] = m.UserID
	}
	users, err := s.userStore.GetUsersByIDs(memberIDs)
	if err != nil {
		return nil, utils.NewInternalError(err.Error())
	}

	memberDetails := make([]models.GroupMemberDetail, len(group.Members))
	for i, m := range group.Members {
		detail := models.GroupMemberDetail{ID: m.UserID, Role: m.Role}
		if u := users[m.UserID]; u != nil {
			detail.Name = u.Name
			detail.ImageURL = u.ImageURL
		}
		memberDetails[i] = detail
	}

	totals := make(map[string]float64, len(memberIDs))
	ledger := make(map[string]map[string]float64, len(memberIDs))
	for _, a := range memberIDs {
		totals[a] = 0
		ledger[a] = make(map[string]float64, len(memberIDs)-1)
		for _, b := range memberIDs {
			if a != b {
				ledger[a][b] = 0
			}
		}
	}

	// Gross debts: each unpaid split is owed to the payer.
	for _, exp := range expenses {
		payer := exp.PaidByUserID
		for _, split := range exp.Splits {
			if split.UserID == payer || split.Paid {
				continue
			}
			debtor := split.UserID
			totals[payer] += split.Amount
			totals[debtor] -= split.Amount
			ledger[debtor][payer] += split.Amount
		}
	}

	// A settlement reduces what the payer owed the receiver. The cell
	// can go negative here; the netting pass resolves it.
	for _, st := range settlements {
		totals[st.PaidByUserID] += st.Amount
		totals[st.ReceivedByUserID] -= st.Amount
		ledger[st.PaidByUserID][st.ReceivedByUserID] -= st.Amount
	}

	netLedger(ledger, memberIDs)

	balances := make([]models.MemberBalance, len(memberDetails))
	for i, m := range memberDetails {
		owes := []models.DebtEntry{}
		owedBy := []models.DebtEntry{}
		for _, other := range memberIDs {
			if other == m.ID {
				continue
			}
			if amt := ledger[m.ID][other]; amt > 0 {
				owes = append(owes, models.DebtEntry{UserID: other, Amount: amt})
			}
			if amt := ledger[other][m.ID]; amt > 0 {
				owedBy = append(owedBy, models.DebtEntry{UserID: other, Amount: amt})
			}
		}
		balances[i] = models.MemberBalance{
			ID:           m.ID,
			Name:         m.Name,
			ImageURL:     m.ImageURL,
			Role:         m.Role,
			TotalBalance: totals[m.ID],
			Owes:         owes,
			OwedBy:       owedBy,
		}
	}

	userLookupMap := make(map[string]models.GroupMemberDetail, len(memberDetails))
	for _, m := range memberDetails {
		userLookupMap[m.ID] = m
	}

	return &models.GroupLedger{
		Group: models.GroupSummary{
			ID:          group.ID,
			Name:        group.Name,
			Description: group.Description,
		},
		Members:       memberDetails,
		Expenses:      expenses,
		Settlements:   settlements,
		Balances:      balances,
		UserLookupMap: userLookupMap,
	}, nil
}

// netLedger collapses opposing debts between every pair into a single
// direction. After the pass at most one of ledger[a][b], ledger[b][a]
// is positive, the other zero. Applying it twice is a no-op.
func netLedger(ledger map[string]map[string]float64, memberIDs []string) {
	ids := make([]string, len(memberIDs))
	copy(ids, memberIDs)
	sort.Strings(ids)

	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a, b := ids[i], ids[j]
			diff := ledger[a][b] - ledger[b][a]
			switch {
			case diff > 0:
				ledger[a][b] = diff
				ledger[b][a] = 0
			case diff < 0:
				ledger[b][a] = -diff
				ledger[a][b] = 0
			default:
				ledger[a][b] = 0
				ledger[b][a] = 0
			}
		}
	}
}

// GetUserGroups lists the groups the user belongs to, each with the
// user's net balance inside that group.
func (s *GroupService) GetUserGroups(userID string) ([]models.GroupWithBalance, error) {
	allGroups, err := s.groupStore.ListGroups()
	if err != nil {
		return nil, utils.NewInternalError(err.Error())
	}

	result := []models.GroupWithBalance{}
	for _, group := range allGroups {
		if !group.HasMember(userID) {
			continue
		}

		expenses, err := s.expenseStore.ListGroupExpenses(group.ID)
		if err != nil {
			return nil, utils.NewInternalError(err.Error())
		}

		var balance float64
		for _, exp := range expenses {
			if exp.PaidByUserID == userID {
				for _, split := range exp.Splits {
					if split.UserID != userID && !split.Paid {
						balance += split.Amount
					}
				}
			} else if split := exp.SplitFor(userID); split != nil && !split.Paid {
				balance -= split.Amount
			}
		}

		settlements, err := s.settlementStore.ListGroupSettlements(group.ID)
		if err != nil {
			return nil, utils.NewInternalError(err.Error())
		}
		for _, st := range settlements {
			if st.PaidByUserID == userID {
				balance += st.Amount
			} else if st.ReceivedByUserID == userID {
				balance -= st.Amount
			}
		}

		result = append(result, models.GroupWithBalance{
			ID:          group.ID,
			Name:        group.Name,
			Description: group.Description,
			MemberCount: len(group.Members),
			Balance:     balance,
		})
	}

	return result, nil
}
