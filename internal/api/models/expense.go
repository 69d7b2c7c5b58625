package models

import "trackwallet/internal/api/primitives"

// NewExpense is an expense before it is stored.
type NewExpense struct {
	UserID      primitives.UserID              `json:"userId"`
	Amount      float64                        `json:"amount"`
	Description *string                        `json:"description"`
	Date        primitives.UnixTimestampString `json:"date"`
}

// Expense is a stored expense.
type Expense struct {
	NewExpense
	ID      primitives.ExpenseID           `json:"id"`
	Created primitives.UnixTimestampString `json:"created"`
	Updated primitives.UnixTimestampString `json:"updated"`
}
