package utils

const (
	// Split types
	SplitTypeEqual      = "equal"
	SplitTypePercentage = "percentage"
	SplitTypeExact      = "exact"

	// Group member roles
	RoleAdmin  = "admin"
	RoleMember = "member"

	// DefaultCategory is assigned when an expense has no category tag.
	DefaultCategory = "Others"

	// SplitSumTolerance is the absolute tolerance used everywhere
	// monetary sums are compared.
	SplitSumTolerance = 0.01

	// Precision for monetary calculations
	MoneyPrecision = 100.0
)
