package models

import "trackwallet/internal/api/primitives"

type InvestStatus string

const (
	InvestStatusActive    InvestStatus = "Active"
	InvestStatusCompleted InvestStatus = "Completed"
)

// NewInvest is an investment before it is stored.
type NewInvest struct {
	UserID    primitives.UserID               `json:"userId"`
	Name      string                          `json:"name"`
	Amount    float64                         `json:"amount"`
	Note      string                          `json:"note"`
	StartDate primitives.UnixTimestampString  `json:"startDate"`
	EndDate   *primitives.UnixTimestampString `json:"endDate,omitempty"`
}

// Invest is a stored investment. Status and Earned are server-managed:
// investments start Active and Earned appears once the position is closed.
// The return on investment is derived from Amount and Earned, never stored.
type Invest struct {
	NewInvest
	ID      primitives.InvestID            `json:"id"`
	Status  InvestStatus                   `json:"status"`
	Earned  *float64                       `json:"earned,omitempty"`
	Created primitives.UnixTimestampString `json:"created"`
	Updated primitives.UnixTimestampString `json:"updated"`
}
