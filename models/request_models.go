package models

// SplitInput is one split entry of a create-expense request.
type SplitInput struct {
	UserID string  `json:"userId" binding:"required"`
	Amount float64 `json:"amount" binding:"min=0"`
	Paid   bool    `json:"paid"`
}

// CreateExpenseRequest request model
type CreateExpenseRequest struct {
	Description  string       `json:"description" binding:"required"`
	Amount       float64      `json:"amount" binding:"required,gt=0"`
	Category     string       `json:"category"`
	Date         int64        `json:"date" binding:"required"`
	PaidByUserID string       `json:"paidByUserId" binding:"required"`
	SplitType    string       `json:"splitType" binding:"required,oneof=equal percentage exact"`
	Splits       []SplitInput `json:"splits" binding:"required,min=1"`
	GroupID      string       `json:"groupId"`
}

// DeleteExpenseRequest request model
type DeleteExpenseRequest struct {
	ExpenseID string `json:"expenseId" binding:"required"`
}

// CreateSettlementRequest request model
type CreateSettlementRequest struct {
	Amount            float64  `json:"amount" binding:"required,gt=0"`
	Note              string   `json:"note"`
	PaidByUserID      string   `json:"paidByUserId" binding:"required"`
	ReceivedByUserID  string   `json:"receivedByUserId" binding:"required"`
	GroupID           string   `json:"groupId"`
	RelatedExpenseIDs []string `json:"relatedExpenseIds"`
}

// CreateGroupRequest request model
type CreateGroupRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Members     []string `json:"members"`
}

// CreateExpenseResponse response model
type CreateExpenseResponse struct {
	ExpenseID string `json:"expenseId"`
}

// CreateSettlementResponse response model
type CreateSettlementResponse struct {
	SettlementID string `json:"settlementId"`
}

// CreateGroupResponse response model
type CreateGroupResponse struct {
	GroupID string `json:"groupId"`
}

// DeleteExpenseResponse response model
type DeleteExpenseResponse struct {
	Success bool `json:"success"`
}
