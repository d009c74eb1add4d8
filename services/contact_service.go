package services

import (
	"sort"

	"github.com/splitr-app/splitr-backend/models"
	"github.com/splitr-app/splitr-backend/utils"
)

// ContactService lists the people and groups a user shares expenses with
type ContactService struct {
	userStore    UserStore
	groupStore   GroupStore
	expenseStore ExpenseStore
}

// NewContactService creates a new contact service
func NewContactService(userStore UserStore, groupStore GroupStore, expenseStore ExpenseStore) *ContactService {
	return &ContactService{
		userStore:    userStore,
		groupStore:   groupStore,
		expenseStore: expenseStore,
	}
}

// GetAllContacts returns every user appearing with the requesting user
// in a personal expense, plus the user's groups, both sorted by name.
func (s *ContactService) GetAllContacts(userID string) (*models.Contacts, error) {
	youPaid, err := s.expenseStore.ListPersonalExpensesByPayer(userID)
	if err != nil {
		return nil, utils.NewInternalError(err.Error())
	}

	allPersonal, err := s.expenseStore.ListPersonalExpenses()
	if err != nil {
		return nil, utils.NewInternalError(err.Error())
	}

	notPaidByYou := make([]*models.Expense, 0, len(allPersonal))
	for _, e := range allPersonal {
		if e.PaidByUserID != userID && e.SplitFor(userID) != nil {
			notPaidByYou = append(notPaidByYou, e)
		}
	}

	contactIDs := make(map[string]bool)
	for _, e := range append(youPaid, notPaidByYou...) {
		if e.PaidByUserID != userID {
			contactIDs[e.PaidByUserID] = true
		}
		for _, split := range e.Splits {
			if split.UserID != userID {
				contactIDs[split.UserID] = true
			}
		}
	}

	ids := make([]string, 0, len(contactIDs))
	for id := range contactIDs {
		ids = append(ids, id)
	}
	users, err := s.userStore.GetUsersByIDs(ids)
	if err != nil {
		return nil, utils.NewInternalError(err.Error())
	}

	contactUsers := []models.ContactUser{}
	for _, id := range ids {
		u := users[id]
		if u == nil {
			continue
		}
		contactUsers = append(contactUsers, models.ContactUser{
			ID:       u.ID,
			Name:     u.Name,
			Email:    u.Email,
			ImageURL: u.ImageURL,
			Type:     "user",
		})
	}

	allGroups, err := s.groupStore.ListGroups()
	if err != nil {
		return nil, utils.NewInternalError(err.Error())
	}

	contactGroups := []models.ContactGroup{}
	for _, g := range allGroups {
		if !g.HasMember(userID) {
			continue
		}
		contactGroups = append(contactGroups, models.ContactGroup{
			ID:          g.ID,
			Name:        g.Name,
			Description: g.Description,
			MemberCount: len(g.Members),
			Type:        "group",
		})
	}

	sort.Slice(contactUsers, func(i, j int) bool {
		return contactUsers[i].Name < contactUsers[j].Name
	})
	sort.Slice(contactGroups, func(i, j int) bool {
		return contactGroups[i].Name < contactGroups[j].Name
	})

	return &models.Contacts{
		Users:  contactUsers,
		Groups: contactGroups,
	}, nil
}
