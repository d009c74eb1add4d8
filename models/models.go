// models/models.go
package models

import "time"

// User represents a registered user. The engine only reads users.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// GroupMember is one membership entry inside a group.
type GroupMember struct {
	UserID   string `json:"userId"`
	Role     string `json:"role"`
	JoinedAt int64  `json:"joinedAt"`
}

// Group represents a set of users sharing expenses
type Group struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	CreatedBy   string        `json:"createdBy"`
	Members     []GroupMember `json:"members"`
}

// HasMember reports whether userID appears in the membership list.
func (g *Group) HasMember(userID string) bool {
	for _, m := range g.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// Split is one participant's assigned share of an expense.
// Paid=true marks a share settled at creation time (typically the
// payer's own share); such splits never count as outstanding debt.
type Split struct {
	UserID string  `json:"userId"`
	Amount float64 `json:"amount"`
	Paid   bool    `json:"paid"`
}

// Expense represents a shared expense. GroupID is empty for personal
// (non-group) expenses.
type Expense struct {
	ID           string  `json:"id"`
	Description  string  `json:"description"`
	Amount       float64 `json:"amount"`
	Category     string  `json:"category"`
	Date         int64   `json:"date"`
	PaidByUserID string  `json:"paidByUserId"`
	SplitType    string  `json:"splitType"`
	Splits       []Split `json:"splits"`
	GroupID      string  `json:"groupId,omitempty"`
	CreatedBy    string  `json:"createdBy"`
}

// SplitFor returns the split assigned to userID, or nil.
func (e *Expense) SplitFor(userID string) *Split {
	for i := range e.Splits {
		if e.Splits[i].UserID == userID {
			return &e.Splits[i]
		}
	}
	return nil
}

// Involves reports whether userID is the payer or a split participant.
func (e *Expense) Involves(userID string) bool {
	return e.PaidByUserID == userID || e.SplitFor(userID) != nil
}

// Settlement represents a direct payment from one user to another,
// reducing an outstanding debt.
type Settlement struct {
	ID                string   `json:"id"`
	Amount            float64  `json:"amount"`
	Note              string   `json:"note,omitempty"`
	Date              int64    `json:"date"`
	PaidByUserID      string   `json:"paidByUserId"`
	ReceivedByUserID  string   `json:"receivedByUserId"`
	GroupID           string   `json:"groupId,omitempty"`
	RelatedExpenseIDs []string `json:"relatedExpenseIds,omitempty"`
	CreatedBy         string   `json:"createdBy"`
}

// NowMillis returns the current time as unix milliseconds, the
// timestamp unit used across all records.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
