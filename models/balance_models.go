package models

// UserSummary is the public slice of a user's profile embedded in
// balance responses.
type UserSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// CounterpartyBalance is one entry of the aggregate balance breakdown.
type CounterpartyBalance struct {
	UserID   string  `json:"userId"`
	Name     string  `json:"name"`
	ImageURL string  `json:"imageUrl,omitempty"`
	Amount   float64 `json:"amount"`
}

// OweDetails splits the per-counterparty breakdown into the two
// directions of the aggregate balance.
type OweDetails struct {
	YouOwe       []CounterpartyBalance `json:"youOwe"`
	YouAreOwedBy []CounterpartyBalance `json:"youAreOwedBy"`
}

// UserBalance is the aggregate balance report for one user across all
// counterparties.
type UserBalance struct {
	YouOwe       float64    `json:"youOwe"`
	YouAreOwed   float64    `json:"youAreOwed"`
	TotalBalance float64    `json:"totalBalance"`
	OweDetails   OweDetails `json:"oweDetails"`
}

// PairwiseBalance is the result of comparing two users' shared
// personal history. Balance is signed: positive means the other user
// owes the requester.
type PairwiseBalance struct {
	Expenses    []*Expense    `json:"expenses"`
	Settlements []*Settlement `json:"settlements"`
	OtherUser   UserSummary   `json:"otherUser"`
	Balance     float64       `json:"balance"`
}

// DebtEntry is one directed debt inside a member balance.
type DebtEntry struct {
	UserID string  `json:"userId"`
	Amount float64 `json:"amount"`
}

// MemberBalance is one group member's position in the group ledger.
type MemberBalance struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	ImageURL     string      `json:"imageUrl,omitempty"`
	Role         string      `json:"role"`
	TotalBalance float64     `json:"totalBalance"`
	Owes         []DebtEntry `json:"owes"`
	OwedBy       []DebtEntry `json:"owedBy"`
}

// GroupSummary is the group header attached to ledger responses.
type GroupSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// GroupMemberDetail is a resolved member profile plus role.
type GroupMemberDetail struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl,omitempty"`
	Role     string `json:"role"`
}

// GroupLedger is the full intra-group balance view.
type GroupLedger struct {
	Group         GroupSummary                 `json:"group"`
	Members       []GroupMemberDetail          `json:"members"`
	Expenses      []*Expense                   `json:"expenses"`
	Settlements   []*Settlement                `json:"settlements"`
	Balances      []MemberBalance              `json:"balances"`
	UserLookupMap map[string]GroupMemberDetail `json:"userLookupMap"`
}

// GroupWithBalance is one entry of the user's group list, carrying the
// requesting user's net balance inside that group.
type GroupWithBalance struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	MemberCount int     `json:"memberCount"`
	Balance     float64 `json:"balance"`
}

// ContactUser is a user entry in the contacts listing.
type ContactUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"imageUrl,omitempty"`
	Type     string `json:"type"`
}

// ContactGroup is a group entry in the contacts listing.
type ContactGroup struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MemberCount int    `json:"memberCount"`
	Type        string `json:"type"`
}

// Contacts is the combined contact listing for a user.
type Contacts struct {
	Users  []ContactUser  `json:"users"`
	Groups []ContactGroup `json:"groups"`
}

// UserSettlementData is the settlement view against a single user.
type UserSettlementData struct {
	Type        string      `json:"type"`
	Counterpart UserSummary `json:"counterpart"`
	YouAreOwed  float64     `json:"youAreOwed"`
	YouOwe      float64     `json:"youOwe"`
	NetBalance  float64     `json:"netBalance"`
}

// GroupMemberSettlement is one member's position in the group
// settlement view, from the requesting user's perspective.
type GroupMemberSettlement struct {
	UserID     string  `json:"userId"`
	Name       string  `json:"name"`
	ImageURL   string  `json:"imageUrl,omitempty"`
	YouAreOwed float64 `json:"youAreOwed"`
	YouOwe     float64 `json:"youOwe"`
	NetBalance float64 `json:"netBalance"`
}

// GroupSettlementData is the settlement view against a group.
type GroupSettlementData struct {
	Type     string                  `json:"type"`
	Group    GroupSummary            `json:"group"`
	Balances []GroupMemberSettlement `json:"balances"`
}

// MonthlySpending is one month's spending total.
type MonthlySpending struct {
	Month int64   `json:"month"`
	Total float64 `json:"total"`
}
