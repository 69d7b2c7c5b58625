package params

import "trackwallet/internal/api/primitives"

type AddMonthlyLimitParams struct {
	UserID primitives.UserID `json:"userId"`
	Limit  float64           `json:"limit"`
	Month  primitives.Month  `json:"month"`
	Year   primitives.Year   `json:"year"`
}

type UpdateMonthlyLimitParams struct {
	ID    primitives.MonthlyLimitID `json:"id"`
	Month *primitives.Month         `json:"month,omitempty"`
	Year  *primitives.Year          `json:"year,omitempty"`
	Limit *float64                  `json:"limit,omitempty"`
}

// GetMonthlyLimitParams looks up the single limit for (user, month, year).
type GetMonthlyLimitParams struct {
	UserID primitives.UserID
	Month  primitives.Month
	Year   primitives.Year
}
