package insights

import (
	"testing"

	"trackwallet/internal/api/models"

	"github.com/stretchr/testify/assert"
)

func expense(amount float64) models.Expense {
	return models.Expense{NewExpense: models.NewExpense{Amount: amount}}
}

func TestTotalExpense(t *testing.T) {
	assert.Equal(t, 0.0, TotalExpense(nil))
	assert.Equal(t, 75.5, TotalExpense([]models.Expense{expense(50), expense(25.5)}))
}

func TestPercentOfLimit(t *testing.T) {
	tests := []struct {
		name         string
		total, limit float64
		want         float64
	}{
		{"half spent", 50, 100, 50},
		{"over limit", 150, 100, 150},
		{"runaway overspend capped", 100000, 100, MaxPercent},
		{"no limit", 50, 0, 0},
		{"negative limit", 50, -10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PercentOfLimit(tt.total, tt.limit))
		})
	}
}

func TestRemainingBalance(t *testing.T) {
	remaining, ok := RemainingBalance(30, 100)
	assert.True(t, ok)
	assert.Equal(t, 70.0, remaining)

	remaining, ok = RemainingBalance(150, 100)
	assert.True(t, ok)
	assert.Equal(t, 0.0, remaining, "overspend floors at zero")

	_, ok = RemainingBalance(30, 0)
	assert.False(t, ok, "no limit means no remaining balance")
}

func TestOverviewForMonth(t *testing.T) {
	expenses := []models.Expense{expense(40), expense(10)}
	limit := &models.MonthlyLimit{NewMonthlyLimit: models.NewMonthlyLimit{Limit: 100}}

	overview := OverviewForMonth(expenses, limit)
	assert.Equal(t, 50.0, overview.Total)
	assert.True(t, overview.HasLimit)
	assert.Equal(t, 50.0, overview.Percent)
	assert.Equal(t, 50.0, overview.Remaining)

	overview = OverviewForMonth(expenses, nil)
	assert.Equal(t, 50.0, overview.Total)
	assert.False(t, overview.HasLimit)
	assert.Equal(t, 0.0, overview.Percent)
}

func invest(amount float64, earned *float64) models.Invest {
	return models.Invest{
		NewInvest: models.NewInvest{Amount: amount},
		Earned:    earned,
	}
}

func ptr(v float64) *float64 { return &v }

func TestReturnOnInvestment(t *testing.T) {
	roi, ok := ReturnOnInvestment(invest(100, ptr(120)))
	assert.True(t, ok)
	assert.Equal(t, 20.0, roi)

	roi, ok = ReturnOnInvestment(invest(100, ptr(80)))
	assert.True(t, ok)
	assert.Equal(t, -20.0, roi)

	_, ok = ReturnOnInvestment(invest(100, nil))
	assert.False(t, ok, "no earned figure, no return")

	_, ok = ReturnOnInvestment(invest(0, ptr(10)))
	assert.False(t, ok, "zero amount must not divide")
}

func TestAverageReturn(t *testing.T) {
	assert.Equal(t, 0.0, AverageReturn(nil))

	investments := []models.Invest{
		invest(100, ptr(120)), // +20%
		invest(100, ptr(110)), // +10%
	}
	assert.Equal(t, 15.0, AverageReturn(investments))

	// An item without an earned figure still counts toward the divisor.
	withMissing := append(investments, invest(100, nil))
	assert.Equal(t, 10.0, AverageReturn(withMissing))
}

func loan(amount float64, loanType models.LoanType) models.Loan {
	return models.Loan{NewLoan: models.NewLoan{Amount: amount, LoanType: loanType}}
}

func TestLoans(t *testing.T) {
	pos := Loans([]models.Loan{
		loan(500, models.LoanTypeGiven),
		loan(200, models.LoanTypeGiven),
		loan(300, models.LoanTypeTaken),
	})
	assert.Equal(t, 700.0, pos.TotalGiven)
	assert.Equal(t, 300.0, pos.TotalBorrowed)
	assert.Equal(t, 400.0, pos.Net)

	pos = Loans(nil)
	assert.Equal(t, LoanPosition{}, pos)
}
