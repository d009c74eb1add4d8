package services

import (
	"testing"

	"github.com/splitr-app/splitr-backend/models"
	"github.com/stretchr/testify/assert"
)

func newContactFixture() (*memoryStore, *ContactService) {
	store := newMemoryStore()
	store.addUser("alice", "Alice")
	store.addUser("bob", "Bob")
	store.addUser("carol", "Carol")
	store.addUser("dave", "Dave")
	return store, NewContactService(store, store, store)
}

func TestContactService_GetAllContacts(t *testing.T) {
	store, service := newContactFixture()

	// Alice paid with Bob, Carol paid with Alice. Dave never shared an
	// expense with Alice.
	store.CreateExpense(personalExpense("e1", "alice", 50, 1000,
		models.Split{UserID: "alice", Amount: 25, Paid: true},
		models.Split{UserID: "bob", Amount: 25},
	))
	store.CreateExpense(personalExpense("e2", "carol", 30, 2000,
		models.Split{UserID: "carol", Amount: 15, Paid: true},
		models.Split{UserID: "alice", Amount: 15},
	))
	store.CreateExpense(personalExpense("e3", "dave", 10, 3000,
		models.Split{UserID: "dave", Amount: 5, Paid: true},
		models.Split{UserID: "carol", Amount: 5},
	))

	seedGroup(store, "g1", "alice", "bob")
	seedGroup(store, "g2", "carol", "dave")

	contacts, err := service.GetAllContacts("alice")
	assert.NoError(t, err)

	names := make([]string, len(contacts.Users))
	for i, u := range contacts.Users {
		names[i] = u.Name
	}
	assert.Equal(t, []string{"Bob", "Carol"}, names)
	for _, u := range contacts.Users {
		assert.Equal(t, "user", u.Type)
	}

	assert.Len(t, contacts.Groups, 1)
	assert.Equal(t, "g1", contacts.Groups[0].ID)
	assert.Equal(t, "group", contacts.Groups[0].Type)
	assert.Equal(t, 2, contacts.Groups[0].MemberCount)
}

func TestContactService_GetAllContacts_Empty(t *testing.T) {
	_, service := newContactFixture()

	contacts, err := service.GetAllContacts("alice")
	assert.NoError(t, err)
	assert.Empty(t, contacts.Users)
	assert.Empty(t, contacts.Groups)
}
