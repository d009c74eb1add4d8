package services

import (
	"testing"

	"github.com/splitr-app/splitr-backend/models"
	"github.com/splitr-app/splitr-backend/utils"
	"github.com/stretchr/testify/assert"
)

func newExpenseFixture() (*memoryStore, *ExpenseService) {
	store := newMemoryStore()
	store.addUser("alice", "Alice")
	store.addUser("bob", "Bob")
	store.addUser("carol", "Carol")
	return store, NewExpenseService(store, store, store, NewSplitService())
}

func TestExpenseService_CreateExpense(t *testing.T) {
	store, service := newExpenseFixture()

	id, err := service.CreateExpense("alice", &models.CreateExpenseRequest{
		Description:  "Groceries",
		Amount:       50,
		Date:         1000,
		PaidByUserID: "alice",
		SplitType:    utils.SplitTypeEqual,
		Splits: []models.SplitInput{
			{UserID: "alice", Amount: 25, Paid: true},
			{UserID: "bob", Amount: 25},
		},
	})
	assert.NoError(t, err)

	expense := store.expenses[id]
	assert.NotNil(t, expense)
	assert.Equal(t, "Groceries", expense.Description)
	assert.Equal(t, utils.DefaultCategory, expense.Category)
	assert.Equal(t, "alice", expense.CreatedBy)
	assert.Len(t, expense.Splits, 2)
}

func TestExpenseService_CreateExpense_Validation(t *testing.T) {
	store, service := newExpenseFixture()
	seedGroup(store, "g1", "alice", "bob")

	t.Run("rejects splits not summing to the amount", func(t *testing.T) {
		_, err := service.CreateExpense("alice", &models.CreateExpenseRequest{
			Description:  "Dinner",
			Amount:       100,
			Date:         1000,
			PaidByUserID: "alice",
			SplitType:    utils.SplitTypeExact,
			Splits: []models.SplitInput{
				{UserID: "alice", Amount: 40, Paid: true},
				{UserID: "bob", Amount: 40},
			},
		})
		assert.True(t, utils.IsKind(err, utils.KindValidation))
	})

	t.Run("rejects an unknown group", func(t *testing.T) {
		_, err := service.CreateExpense("alice", &models.CreateExpenseRequest{
			Description:  "Dinner",
			Amount:       10,
			Date:         1000,
			PaidByUserID: "alice",
			SplitType:    utils.SplitTypeEqual,
			GroupID:      "missing",
			Splits:       []models.SplitInput{{UserID: "alice", Amount: 10, Paid: true}},
		})
		assert.True(t, utils.IsKind(err, utils.KindNotFound))
	})

	t.Run("rejects a payer outside the group", func(t *testing.T) {
		_, err := service.CreateExpense("carol", &models.CreateExpenseRequest{
			Description:  "Dinner",
			Amount:       10,
			Date:         1000,
			PaidByUserID: "carol",
			SplitType:    utils.SplitTypeEqual,
			GroupID:      "g1",
			Splits:       []models.SplitInput{{UserID: "carol", Amount: 10, Paid: true}},
		})
		assert.True(t, utils.IsKind(err, utils.KindAuthorization))
	})
}

func TestExpenseService_DeleteExpense_Permissions(t *testing.T) {
	store, service := newExpenseFixture()

	store.CreateExpense(personalExpense("e1", "alice", 50, 1000,
		models.Split{UserID: "alice", Amount: 25, Paid: true},
		models.Split{UserID: "bob", Amount: 25},
	))

	err := service.DeleteExpense("bob", "e1")
	assert.True(t, utils.IsKind(err, utils.KindAuthorization))

	err = service.DeleteExpense("alice", "missing")
	assert.True(t, utils.IsKind(err, utils.KindNotFound))

	err = service.DeleteExpense("alice", "e1")
	assert.NoError(t, err)
	assert.NotContains(t, store.expenses, "e1")
}

func TestExpenseService_DeleteExpense_PatchesRelatedSettlements(t *testing.T) {
	store, service := newExpenseFixture()

	store.CreateExpense(personalExpense("e1", "alice", 50, 1000,
		models.Split{UserID: "alice", Amount: 25, Paid: true},
		models.Split{UserID: "bob", Amount: 25},
	))
	store.CreateExpense(personalExpense("e2", "alice", 30, 2000,
		models.Split{UserID: "alice", Amount: 15, Paid: true},
		models.Split{UserID: "bob", Amount: 15},
	))
	// One settlement covers both expenses, another covers only the first.
	store.CreateSettlement(&models.Settlement{
		ID:                "s1",
		Amount:            40,
		Date:              3000,
		PaidByUserID:      "bob",
		ReceivedByUserID:  "alice",
		RelatedExpenseIDs: []string{"e1", "e2"},
		CreatedBy:         "bob",
	})
	store.CreateSettlement(&models.Settlement{
		ID:                "s2",
		Amount:            10,
		Date:              3000,
		PaidByUserID:      "bob",
		ReceivedByUserID:  "alice",
		RelatedExpenseIDs: []string{"e1"},
		CreatedBy:         "bob",
	})

	err := service.DeleteExpense("alice", "e1")
	assert.NoError(t, err)

	// s1 keeps going with the surviving reference; s2 had no other
	// reference and is removed with the expense.
	assert.Equal(t, []string{"e2"}, store.settlements["s1"].RelatedExpenseIDs)
	assert.NotContains(t, store.settlements, "s2")
	assert.NotContains(t, store.expenses, "e1")
}
