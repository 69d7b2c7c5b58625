// Package insights computes the derived figures shown alongside fetched
// collections: spend against the monthly limit, investment returns and the
// net loan position. All functions are pure.
package insights

import "trackwallet/internal/api/models"

// MaxPercent caps the percent-of-limit figure so runaway overspend renders
// as "999%" instead of an unbounded number.
const MaxPercent = 999.0

// TotalExpense sums the amounts of a fetched expense list. The list is
// already period-filtered by the backend.
func TotalExpense(expenses []models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// PercentOfLimit is the spent share of the monthly limit in percent,
// capped at MaxPercent. Without a positive limit there is no percentage
// to show, so it reports 0.
func PercentOfLimit(total, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	percent := total * 100 / limit
	if percent > MaxPercent {
		return MaxPercent
	}
	return percent
}

// RemainingBalance is the unspent part of the limit, floored at zero.
// The second return is false when no limit is set.
func RemainingBalance(total, limit float64) (float64, bool) {
	if limit <= 0 {
		return 0, false
	}
	remaining := limit - total
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

// MonthOverview bundles the expense figures for one month.
type MonthOverview struct {
	Total     float64
	Limit     float64
	HasLimit  bool
	Percent   float64
	Remaining float64
}

// OverviewForMonth computes the month summary from a fetched expense list
// and the month's limit record, if any.
func OverviewForMonth(expenses []models.Expense, limit *models.MonthlyLimit) MonthOverview {
	overview := MonthOverview{Total: TotalExpense(expenses)}
	if limit == nil || limit.Limit <= 0 {
		return overview
	}
	overview.Limit = limit.Limit
	overview.HasLimit = true
	overview.Percent = PercentOfLimit(overview.Total, limit.Limit)
	overview.Remaining, _ = RemainingBalance(overview.Total, limit.Limit)
	return overview
}

// ReturnOnInvestment is the percent return of one position. The second
// return is false when the position has no earned figure yet or the
// invested amount is zero; there is no NaN to leak.
func ReturnOnInvestment(inv models.Invest) (float64, bool) {
	if inv.Earned == nil || inv.Amount == 0 {
		return 0, false
	}
	return (*inv.Earned - inv.Amount) / inv.Amount * 100, true
}

// AverageReturn is the mean per-item return across a fetched list,
// intended for completed investments. Items without an earned figure
// contribute zero to the sum but still count toward the divisor, matching
// how the portfolio summary has always read. Empty lists yield 0.
func AverageReturn(investments []models.Invest) float64 {
	if len(investments) == 0 {
		return 0
	}
	var sum float64
	for _, inv := range investments {
		if roi, ok := ReturnOnInvestment(inv); ok {
			sum += roi
		}
	}
	return sum / float64(len(investments))
}

// LoanPosition aggregates loans by direction. A positive Net means more
// was given than taken, i.e. the user is in credit.
type LoanPosition struct {
	TotalGiven    float64
	TotalBorrowed float64
	Net           float64
}

// Loans computes the loan position from a fetched loan list.
func Loans(loans []models.Loan) LoanPosition {
	var pos LoanPosition
	for _, l := range loans {
		switch l.LoanType {
		case models.LoanTypeGiven:
			pos.TotalGiven += l.Amount
		case models.LoanTypeTaken:
			pos.TotalBorrowed += l.Amount
		}
	}
	pos.Net = pos.TotalGiven - pos.TotalBorrowed
	return pos
}
