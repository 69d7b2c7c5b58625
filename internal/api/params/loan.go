package params

import (
	"trackwallet/internal/api/models"
	"trackwallet/internal/api/primitives"
)

type AddLoanParams struct {
	UserID   primitives.UserID              `json:"userId"`
	Name     string                         `json:"name"`
	Amount   float64                        `json:"amount"`
	DeadLine primitives.UnixTimestampString `json:"deadLine"`
	LoanType models.LoanType                `json:"loanType"`
	Note     *string                        `json:"note"`
}

type UpdateLoanParams struct {
	ID       primitives.LoanID               `json:"id"`
	Amount   *float64                        `json:"amount,omitempty"`
	Name     *string                         `json:"name,omitempty"`
	DeadLine *primitives.UnixTimestampString `json:"deadLine,omitempty"`
	Note     *string                         `json:"note,omitempty"`
}
