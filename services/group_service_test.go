package services

import (
	"testing"

	"github.com/splitr-app/splitr-backend/models"
	"github.com/splitr-app/splitr-backend/utils"
	"github.com/stretchr/testify/assert"
)

func newGroupFixture() (*memoryStore, *GroupService) {
	store := newMemoryStore()
	store.addUser("alice", "Alice")
	store.addUser("bob", "Bob")
	store.addUser("carol", "Carol")
	return store, NewGroupService(store, store, store, store)
}

func seedGroup(store *memoryStore, id string, memberIDs ...string) *models.Group {
	members := make([]models.GroupMember, len(memberIDs))
	for i, uid := range memberIDs {
		role := utils.RoleMember
		if i == 0 {
			role = utils.RoleAdmin
		}
		members[i] = models.GroupMember{UserID: uid, Role: role, JoinedAt: 1000}
	}
	group := &models.Group{
		ID:        id,
		Name:      "Trip " + id,
		CreatedBy: memberIDs[0],
		Members:   members,
	}
	store.CreateGroup(group)
	return group
}

func groupExpense(id, groupID, payer string, amount float64, splits ...models.Split) *models.Expense {
	e := personalExpense(id, payer, amount, 1000, splits...)
	e.GroupID = groupID
	return e
}

func TestGroupService_CreateGroup(t *testing.T) {
	store, service := newGroupFixture()

	groupID, err := service.CreateGroup("alice", "  Ski Trip  ", "winter", []string{"bob", "carol", "bob", "alice"})
	assert.NoError(t, err)

	group := store.groups[groupID]
	assert.NotNil(t, group)
	assert.Equal(t, "Ski Trip", group.Name)
	assert.Equal(t, "alice", group.CreatedBy)
	assert.Len(t, group.Members, 3)

	// Creator first, as admin; everyone else a member.
	assert.Equal(t, "alice", group.Members[0].UserID)
	assert.Equal(t, utils.RoleAdmin, group.Members[0].Role)
	assert.Equal(t, utils.RoleMember, group.Members[1].Role)
}

func TestGroupService_CreateGroup_Errors(t *testing.T) {
	_, service := newGroupFixture()

	_, err := service.CreateGroup("alice", "   ", "", nil)
	assert.True(t, utils.IsKind(err, utils.KindValidation))

	_, err = service.CreateGroup("alice", "Trip", "", []string{"nobody"})
	assert.True(t, utils.IsKind(err, utils.KindNotFound))
}

func TestGroupService_GetGroupLedger(t *testing.T) {
	store, service := newGroupFixture()
	seedGroup(store, "g1", "alice", "bob", "carol")

	// Alice pays 90 split equally; Bob and Carol each owe her 30.
	store.CreateExpense(groupExpense("e1", "g1", "alice", 90,
		models.Split{UserID: "alice", Amount: 30, Paid: true},
		models.Split{UserID: "bob", Amount: 30},
		models.Split{UserID: "carol", Amount: 30},
	))

	ledger, err := service.GetGroupLedger("alice", "g1")
	assert.NoError(t, err)
	assert.Equal(t, "g1", ledger.Group.ID)
	assert.Len(t, ledger.Members, 3)
	assert.Len(t, ledger.Balances, 3)

	byID := make(map[string]models.MemberBalance)
	for _, b := range ledger.Balances {
		byID[b.ID] = b
	}

	assert.InDelta(t, 60, byID["alice"].TotalBalance, 0.001)
	assert.InDelta(t, -30, byID["bob"].TotalBalance, 0.001)
	assert.InDelta(t, -30, byID["carol"].TotalBalance, 0.001)

	assert.Len(t, byID["alice"].OwedBy, 2)
	assert.Empty(t, byID["alice"].Owes)
	assert.Len(t, byID["bob"].Owes, 1)
	assert.Equal(t, "alice", byID["bob"].Owes[0].UserID)
	assert.InDelta(t, 30, byID["bob"].Owes[0].Amount, 0.001)

	assert.Equal(t, "Alice", ledger.UserLookupMap["alice"].Name)
}

func TestGroupService_GetGroupLedger_SettlementClearsDebt(t *testing.T) {
	store, service := newGroupFixture()
	seedGroup(store, "g1", "alice", "bob", "carol")

	store.CreateExpense(groupExpense("e1", "g1", "alice", 90,
		models.Split{UserID: "alice", Amount: 30, Paid: true},
		models.Split{UserID: "bob", Amount: 30},
		models.Split{UserID: "carol", Amount: 30},
	))
	store.CreateSettlement(&models.Settlement{
		ID:               "s1",
		Amount:           30,
		Date:             2000,
		PaidByUserID:     "bob",
		ReceivedByUserID: "alice",
		GroupID:          "g1",
		CreatedBy:        "bob",
	})

	ledger, err := service.GetGroupLedger("bob", "g1")
	assert.NoError(t, err)

	byID := make(map[string]models.MemberBalance)
	for _, b := range ledger.Balances {
		byID[b.ID] = b
	}

	assert.InDelta(t, 30, byID["alice"].TotalBalance, 0.001)
	assert.InDelta(t, 0, byID["bob"].TotalBalance, 0.001)
	assert.Empty(t, byID["bob"].Owes)
	// Only Carol still owes Alice.
	assert.Len(t, byID["alice"].OwedBy, 1)
	assert.Equal(t, "carol", byID["alice"].OwedBy[0].UserID)
}

func TestGroupService_GetGroupLedger_OpposingDebtsNet(t *testing.T) {
	store, service := newGroupFixture()
	seedGroup(store, "g1", "alice", "bob")

	// Bob owes Alice 30 and Alice owes Bob 10; only the 20 difference
	// survives.
	store.CreateExpense(groupExpense("e1", "g1", "alice", 60,
		models.Split{UserID: "alice", Amount: 30, Paid: true},
		models.Split{UserID: "bob", Amount: 30},
	))
	store.CreateExpense(groupExpense("e2", "g1", "bob", 20,
		models.Split{UserID: "bob", Amount: 10, Paid: true},
		models.Split{UserID: "alice", Amount: 10},
	))

	ledger, err := service.GetGroupLedger("alice", "g1")
	assert.NoError(t, err)

	byID := make(map[string]models.MemberBalance)
	for _, b := range ledger.Balances {
		byID[b.ID] = b
	}

	assert.InDelta(t, 20, byID["alice"].TotalBalance, 0.001)
	assert.InDelta(t, -20, byID["bob"].TotalBalance, 0.001)
	assert.Empty(t, byID["alice"].Owes)
	assert.Len(t, byID["bob"].Owes, 1)
	assert.InDelta(t, 20, byID["bob"].Owes[0].Amount, 0.001)
	assert.Empty(t, byID["bob"].OwedBy)
}

func TestGroupService_GetGroupLedger_Errors(t *testing.T) {
	store, service := newGroupFixture()
	seedGroup(store, "g1", "alice", "bob")

	_, err := service.GetGroupLedger("alice", "missing")
	assert.True(t, utils.IsKind(err, utils.KindNotFound))

	_, err = service.GetGroupLedger("carol", "g1")
	assert.True(t, utils.IsKind(err, utils.KindAuthorization))
}

func TestNetLedger_Idempotent(t *testing.T) {
	ids := []string{"alice", "bob"}
	ledger := map[string]map[string]float64{
		"alice": {"bob": 10},
		"bob":   {"alice": 30},
	}

	netLedger(ledger, ids)
	assert.InDelta(t, 0, ledger["alice"]["bob"], 0.001)
	assert.InDelta(t, 20, ledger["bob"]["alice"], 0.001)

	netLedger(ledger, ids)
	assert.InDelta(t, 0, ledger["alice"]["bob"], 0.001)
	assert.InDelta(t, 20, ledger["bob"]["alice"], 0.001)
}

func TestGroupService_GetUserGroups(t *testing.T) {
	store, service := newGroupFixture()
	seedGroup(store, "g1", "alice", "bob")
	seedGroup(store, "g2", "bob", "carol")

	store.CreateExpense(groupExpense("e1", "g1", "alice", 60,
		models.Split{UserID: "alice", Amount: 30, Paid: true},
		models.Split{UserID: "bob", Amount: 30},
	))

	groups, err := service.GetUserGroups("alice")
	assert.NoError(t, err)
	assert.Len(t, groups, 1)
	assert.Equal(t, "g1", groups[0].ID)
	assert.Equal(t, 2, groups[0].MemberCount)
	assert.InDelta(t, 30, groups[0].Balance, 0.001)

	// Bob sees both groups, owing 30 in the first.
	bobGroups, err := service.GetUserGroups("bob")
	assert.NoError(t, err)
	assert.Len(t, bobGroups, 2)
}
