package params

import "trackwallet/internal/api/primitives"

type AddExpenseParams struct {
	UserID      primitives.UserID              `json:"userId"`
	Amount      float64                        `json:"amount"`
	Description *string                        `json:"description"`
	Date        primitives.UnixTimestampString `json:"date"`
}

type UpdateExpenseParams struct {
	ID          primitives.ExpenseID            `json:"id"`
	Amount      *float64                        `json:"amount,omitempty"`
	Description *string                         `json:"description,omitempty"`
	Date        *primitives.UnixTimestampString `json:"date,omitempty"`
}

// GetUserExpensesParams selects a user's expenses; Date is interpreted by
// the backend as a month filter.
type GetUserExpensesParams struct {
	UserID primitives.UserID
	Date   primitives.UnixTimestampString
}
