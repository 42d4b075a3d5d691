package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		term      int
		want      float64
		delta     float64
	}{
		{"default loan", 320000, 7, 30, 2128.97, 0.01},
		{"15 year", 200000, 6, 15, 1687.71, 0.01},
		{"zero rate is straight-line", 120000, 0, 10, 1000, 0},
		{"zero principal", 0, 7, 30, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, MonthlyPayment(tt.principal, tt.rate, tt.term), tt.delta)
		})
	}
}

func TestZeroRatePaymentIsExact(t *testing.T) {
	assert.Equal(t, 360000.0/360, MonthlyPayment(360000, 0, 30))
}

func TestGenerateAmortizationProperties(t *testing.T) {
	cases := []struct {
		principal float64
		rate      float64
		term      int
	}{
		{320000, 7, 30},
		{150000, 3.25, 15},
		{50000, 0, 5},
		{1000000, 12, 1},
	}
	for _, c := range cases {
		schedule := GenerateAmortization(c.principal, c.rate, c.term)
		require.Len(t, schedule, c.term*12)

		payment := MonthlyPayment(c.principal, c.rate, c.term)
		prev := c.principal
		for i, row := range schedule {
			assert.Equal(t, i+1, row.Month)
			assert.Equal(t, i/12+1, row.Year)
			assert.LessOrEqual(t, row.Balance, prev, "balance rose at month %d", row.Month)
			assert.InDelta(t, payment, row.Principal+row.Interest, 1e-9)
			prev = row.Balance
		}
		assert.InDelta(t, 0, schedule[len(schedule)-1].Balance, 1e-6)
	}
}

func TestLoanSchedule(t *testing.T) {
	loan := NewLoanSchedule(320000, 7, 30)

	first := loan.Annual(1)
	assert.InDelta(t, MonthlyPayment(320000, 7, 30)*12, first.TotalPayment, 1e-6)
	assert.InDelta(t, first.TotalPayment, first.TotalPrincipal+first.TotalInterest, 1e-6)
	assert.InDelta(t, 320000-first.TotalPrincipal, loan.BalanceAt(1), 1e-6)
	assert.Equal(t, YearEndBalance(loan.Rows, 10), loan.BalanceAt(10))
	assert.Equal(t, AnnualMortgageFor(loan.Rows, 5), loan.Annual(5))

	// after payoff nothing is owed or paid
	assert.Equal(t, 0.0, loan.BalanceAt(31))
	assert.Zero(t, loan.Annual(31).TotalPayment)
	assert.Equal(t, 0.0, YearEndBalance(loan.Rows, 0))
}
