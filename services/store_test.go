package services

import (
	"github.com/splitr-app/splitr-backend/models"
)

// memoryStore is an in-memory implementation of every store interface,
// shared by the service tests.
type memoryStore struct {
	users       map[string]*models.User
	groups      map[string]*models.Group
	expenses    map[string]*models.Expense
	settlements map[string]*models.Settlement
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:       make(map[string]*models.User),
		groups:      make(map[string]*models.Group),
		expenses:    make(map[string]*models.Expense),
		settlements: make(map[string]*models.Settlement),
	}
}

func (m *memoryStore) addUser(id, name string) {
	m.users[id] = &models.User{ID: id, Name: name, Email: id + "@example.com"}
}

func (m *memoryStore) GetUser(id string) (*models.User, error) {
	return m.users[id], nil
}

func (m *memoryStore) GetUsersByIDs(ids []string) (map[string]*models.User, error) {
	result := make(map[string]*models.User, len(ids))
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			result[id] = u
		}
	}
	return result, nil
}

func (m *memoryStore) GetGroup(id string) (*models.Group, error) {
	return m.groups[id], nil
}

func (m *memoryStore) CreateGroup(group *models.Group) error {
	m.groups[group.ID] = group
	return nil
}

func (m *memoryStore) ListGroups() ([]*models.Group, error) {
	result := make([]*models.Group, 0, len(m.groups))
	for _, g := range m.groups {
		result = append(result, g)
	}
	return result, nil
}

func (m *memoryStore) CreateExpense(expense *models.Expense) error {
	m.expenses[expense.ID] = expense
	return nil
}

func (m *memoryStore) GetExpense(id string) (*models.Expense, error) {
	return m.expenses[id], nil
}

func (m *memoryStore) DeleteExpense(id string) error {
	delete(m.expenses, id)
	return nil
}

func (m *memoryStore) ListExpenses() ([]*models.Expense, error) {
	result := make([]*models.Expense, 0, len(m.expenses))
	for _, e := range m.expenses {
		result = append(result, e)
	}
	return result, nil
}

func (m *memoryStore) ListExpensesSince(start int64) ([]*models.Expense, error) {
	result := []*models.Expense{}
	for _, e := range m.expenses {
		if e.Date >= start {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *memoryStore) ListGroupExpenses(groupID string) ([]*models.Expense, error) {
	result := []*models.Expense{}
	for _, e := range m.expenses {
		if e.GroupID == groupID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *memoryStore) ListPersonalExpensesByPayer(userID string) ([]*models.Expense, error) {
	result := []*models.Expense{}
	for _, e := range m.expenses {
		if e.GroupID == "" && e.PaidByUserID == userID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *memoryStore) ListPersonalExpenses() ([]*models.Expense, error) {
	result := []*models.Expense{}
	for _, e := range m.expenses {
		if e.GroupID == "" {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *memoryStore) CreateSettlement(settlement *models.Settlement) error {
	m.settlements[settlement.ID] = settlement
	return nil
}

func (m *memoryStore) DeleteSettlement(id string) error {
	delete(m.settlements, id)
	return nil
}

func (m *memoryStore) ListGroupSettlements(groupID string) ([]*models.Settlement, error) {
	result := []*models.Settlement{}
	for _, s := range m.settlements {
		if s.GroupID == groupID {
			result = append(result, s)
		}
	}
	return result, nil
}

func (m *memoryStore) ListPersonalSettlementsBetween(userA, userB string) ([]*models.Settlement, error) {
	result := []*models.Settlement{}
	for _, s := range m.settlements {
		if s.GroupID != "" {
			continue
		}
		if (s.PaidByUserID == userA && s.ReceivedByUserID == userB) ||
			(s.PaidByUserID == userB && s.ReceivedByUserID == userA) {
			result = append(result, s)
		}
	}
	return result, nil
}

func (m *memoryStore) ListSettlementsByUser(userID string) ([]*models.Settlement, error) {
	result := []*models.Settlement{}
	for _, s := range m.settlements {
		if s.PaidByUserID == userID || s.ReceivedByUserID == userID {
			result = append(result, s)
		}
	}
	return result, nil
}

func (m *memoryStore) ListSettlementsRelatedTo(expenseID string) ([]*models.Settlement, error) {
	result := []*models.Settlement{}
	for _, s := range m.settlements {
		for _, id := range s.RelatedExpenseIDs {
			if id == expenseID {
				result = append(result, s)
				break
			}
		}
	}
	return result, nil
}

func (m *memoryStore) SetRelatedExpenseIDs(id string, expenseIDs []string) error {
	if s, ok := m.settlements[id]; ok {
		s.RelatedExpenseIDs = expenseIDs
	}
	return nil
}
