package models

import "trackwallet/internal/api/primitives"

type LoanType string

const (
	LoanTypeGiven LoanType = "GIVEN"
	LoanTypeTaken LoanType = "TAKEN"
)

// NewLoan is a loan before it is stored.
type NewLoan struct {
	UserID   primitives.UserID              `json:"userId"`
	Name     string                         `json:"name"`
	Amount   float64                        `json:"amount"`
	Note     *string                        `json:"note"`
	DeadLine primitives.UnixTimestampString `json:"deadLine"`
	LoanType LoanType                       `json:"loanType"`
}

// Loan is a stored loan.
type Loan struct {
	NewLoan
	ID      primitives.LoanID              `json:"id"`
	Created primitives.UnixTimestampString `json:"created"`
	Updated primitives.UnixTimestampString `json:"updated"`
}
