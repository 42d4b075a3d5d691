package calculation

import (
	"math"

	"github.com/rpgo/rental-calculator/internal/domain"
)

// MonthlyPayment calculates the level monthly payment of a fixed-rate loan.
// A zero rate amortizes straight-line.
func MonthlyPayment(principal, annualRatePercent float64, termYears int) float64 {
	r := annualRatePercent / 100 / 12
	n := float64(termYears * 12)
	if r == 0 {
		return principal / n
	}
	growth := math.Pow(1+r, n)
	return principal * (r * growth) / (growth - 1)
}

// GenerateAmortization produces the full month-by-month schedule for a loan
func GenerateAmortization(principal, annualRatePercent float64, termYears int) []domain.AmortizationRow {
	r := annualRatePercent / 100 / 12
	n := termYears * 12
	payment := MonthlyPayment(principal, annualRatePercent, termYears)
	rows := make([]domain.AmortizationRow, 0, n)
	balance := principal

	for i := 1; i <= n; i++ {
		interest := balance * r
		principalPaid := payment - interest
		balance = math.Max(0, balance-principalPaid)

		rows = append(rows, domain.AmortizationRow{
			Year:      (i + 11) / 12,
			Month:     i,
			Payment:   payment,
			Principal: principalPaid,
			Interest:  interest,
			Balance:   balance,
		})
	}

	return rows
}

// YearEndBalance returns the balance after the last payment of the given loan year,
// or zero once the loan has been paid off.
func YearEndBalance(schedule []domain.AmortizationRow, year int) float64 {
	lastMonth := year * 12
	if lastMonth < 1 || lastMonth > len(schedule) {
		return 0
	}
	return schedule[lastMonth-1].Balance
}

// AnnualMortgageFor sums payment, principal and interest over the months of one loan year
func AnnualMortgageFor(schedule []domain.AmortizationRow, year int) domain.AnnualMortgage {
	var am domain.AnnualMortgage
	for _, row := range schedule {
		if row.Year != year {
			continue
		}
		am.TotalPayment += row.Payment
		am.TotalPrincipal += row.Principal
		am.TotalInterest += row.Interest
	}
	return am
}

// LoanSchedule is an amortization schedule with per-year aggregates computed once,
// so year lookups are O(1) across a projection.
type LoanSchedule struct {
	Rows    []domain.AmortizationRow
	annual  []domain.AnnualMortgage
	yearEnd []float64
}

// NewLoanSchedule builds the schedule and its yearly aggregates
func NewLoanSchedule(principal, annualRatePercent float64, termYears int) *LoanSchedule {
	rows := GenerateAmortization(principal, annualRatePercent, termYears)
	ls := &LoanSchedule{
		Rows:    rows,
		annual:  make([]domain.AnnualMortgage, termYears),
		yearEnd: make([]float64, termYears),
	}
	for _, row := range rows {
		idx := row.Year - 1
		ls.annual[idx].TotalPayment += row.Payment
		ls.annual[idx].TotalPrincipal += row.Principal
		ls.annual[idx].TotalInterest += row.Interest
		ls.yearEnd[idx] = row.Balance
	}
	return ls
}

// Annual returns the aggregate for a 1-indexed loan year; zero after the term
func (ls *LoanSchedule) Annual(year int) domain.AnnualMortgage {
	if year < 1 || year > len(ls.annual) {
		return domain.AnnualMortgage{}
	}
	return ls.annual[year-1]
}

// BalanceAt returns the balance at the end of a 1-indexed loan year; zero after the term
func (ls *LoanSchedule) BalanceAt(year int) float64 {
	if year < 1 || year > len(ls.yearEnd) {
		return 0
	}
	return ls.yearEnd[year-1]
}
