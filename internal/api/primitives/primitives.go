// Package primitives defines nominal wrappers for the identifier and
// wire-string kinds used by the TrackWallet API, so a LoanID can never be
// passed where an ExpenseID is expected.
package primitives

import (
	"fmt"
	"strconv"
	"time"
)

type (
	UserID         string
	ExpenseID      string
	LoanID         string
	InvestID       string
	MonthlyLimitID string

	// URLString carries URLs that are stored as-is, e.g. profile pictures.
	URLString string
)

// Month is a calendar month, 1-12.
type Month int

// Year is a four-digit calendar year.
type Year int

// UnixTimestampString is the wire representation of a point in time:
// a decimal string of epoch seconds.
type UnixTimestampString string

// NewUnixTimestampString converts a native time to its wire form.
func NewUnixTimestampString(t time.Time) UnixTimestampString {
	return UnixTimestampString(strconv.FormatInt(t.Unix(), 10))
}

// Time converts the wire form back to a native time.
func (s UnixTimestampString) Time() (time.Time, error) {
	sec, err := strconv.ParseInt(string(s), 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid unix timestamp %q: %w", string(s), err)
	}
	return time.Unix(sec, 0), nil
}
