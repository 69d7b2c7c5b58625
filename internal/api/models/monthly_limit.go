package models

import "trackwallet/internal/api/primitives"

// NewMonthlyLimit is a spending limit before it is stored. The backend
// keeps at most one record per (user, month, year).
type NewMonthlyLimit struct {
	UserID primitives.UserID `json:"userId"`
	Month  primitives.Month  `json:"month"`
	Year   primitives.Year   `json:"year"`
	Limit  float64           `json:"limit"`
}

// MonthlyLimit is a stored spending limit.
type MonthlyLimit struct {
	NewMonthlyLimit
	ID      primitives.MonthlyLimitID      `json:"id"`
	Created primitives.UnixTimestampString `json:"created"`
	Updated primitives.UnixTimestampString `json:"updated"`
}
