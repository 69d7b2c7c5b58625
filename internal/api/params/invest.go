package params

import (
	"trackwallet/internal/api/models"
	"trackwallet/internal/api/primitives"
)

type AddInvestParams struct {
	UserID    primitives.UserID               `json:"userId"`
	Name      string                          `json:"name"`
	Amount    float64                         `json:"amount"`
	Note      string                          `json:"note"`
	StartDate primitives.UnixTimestampString  `json:"startDate"`
	EndDate   *primitives.UnixTimestampString `json:"endDate,omitempty"`
}

type UpdateInvestParams struct {
	ID        primitives.InvestID             `json:"id"`
	Amount    *float64                        `json:"amount,omitempty"`
	Name      *string                         `json:"name,omitempty"`
	Note      *string                         `json:"note,omitempty"`
	StartDate *primitives.UnixTimestampString `json:"startDate,omitempty"`
	EndDate   *primitives.UnixTimestampString `json:"endDate,omitempty"`
	Status    *models.InvestStatus            `json:"status,omitempty"`
	Earned    *float64                        `json:"earned,omitempty"`
}

// GetInvestParams selects a user's investments by status.
type GetInvestParams struct {
	UserID primitives.UserID
	Status models.InvestStatus
}
