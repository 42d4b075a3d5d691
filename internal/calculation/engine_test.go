package calculation

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/rental-calculator/internal/domain"
)

type recordingLogger struct {
	NopLogger
	debug []string
	errs  []string
}

func (l *recordingLogger) Debugf(format string, args ...any) { l.debug = append(l.debug, format) }
func (l *recordingLogger) Errorf(format string, args ...any) { l.errs = append(l.errs, format) }

func TestProject_Defaults(t *testing.T) {
	in := domain.DefaultInputs()
	out, err := NewCalculationEngine().Project(in)
	require.NoError(t, err)

	require.Len(t, out.YearResults, 10)
	for i, r := range out.YearResults {
		assert.Equal(t, i+1, r.Year)
	}
	s := out.Summary
	assert.Equal(t, 92000.0, s.TotalInvested)
	assert.Equal(t, s.Outperformance > 0, s.RentalWins)
	assert.InDelta(t, s.RentalFinalWealth-s.IndexFundFinalWealth, s.Outperformance, 1e-9)
	assert.InDelta(t, s.Sale.NetSaleProceeds+s.TotalCashFlow, s.RentalFinalWealth, 1e-6)
	assert.InDelta(t, out.FinalYear().IndexFundValue, s.IndexFundFinalWealth, 1e-9)
	assert.InDelta(t, CumulativeDepreciation(400000, 20, 10), s.Sale.TotalDepreciation, 1e-6)

	wantCAGR := (math.Pow(s.RentalFinalWealth/92000, 0.1) - 1) * 100
	assert.InDelta(t, wantCAGR, s.RentalCAGR, 1e-9)
	assert.InDelta(t, (s.IndexFundFinalWealth-92000)/92000*100, s.IndexFundTotalROI, 1e-9)
}

func TestProject_YearIdentities(t *testing.T) {
	in := domain.DefaultInputs()
	in.OperatingExpenses.HOAMonthly = 150
	out, err := NewCalculationEngine().Project(in)
	require.NoError(t, err)

	var cumulative, savings, contributions float64
	for _, r := range out.YearResults {
		assert.InDelta(t, r.PropertyValue-r.LoanBalance, r.Equity, 1e-6)
		assert.InDelta(t, r.NOI-r.MortgagePayment, r.PreTaxCashFlow, 1e-6)
		assert.InDelta(t, r.PreTaxCashFlow+r.TaxBenefit, r.AfterTaxCashFlow, 1e-6)
		assert.InDelta(t, r.AfterTaxCashFlow/92000*100, r.CashOnCashReturn, 1e-9)
		cumulative += r.AfterTaxCashFlow
		assert.InDelta(t, cumulative, r.CumulativeCashFlow, 1e-6)
		assert.InDelta(t, r.Equity+r.CumulativeCashFlow, r.TotalRentalWealth, 1e-6)
		if r.TaxBenefit > 0 {
			savings += r.TaxBenefit
		}
		assert.InDelta(t, savings, r.CumulativeTaxSavings, 1e-6)
		contributions += opportunityContribution(r.AfterTaxCashFlow)
		assert.InDelta(t, contributions, r.IndexFundContributions, 1e-6)
	}
}

func TestProject_HoldingBeyondLoanTerm(t *testing.T) {
	in := domain.DefaultInputs()
	in.Property.LoanTermYears = 15
	in.HoldingPeriodYears = 30
	out, err := NewCalculationEngine().Project(in)
	require.NoError(t, err)

	require.Len(t, out.YearResults, 30)
	y16 := out.YearResults[15]
	assert.Equal(t, 0.0, y16.LoanBalance)
	assert.Equal(t, 0.0, y16.MortgagePayment)
	assert.Equal(t, 0.0, out.Summary.Sale.LoanPayoff)
	// depreciation stops after 27.5 years
	assert.Equal(t, 0.0, out.YearResults[29].Depreciation)
	assert.InDelta(t, out.YearResults[0].Depreciation/2, out.YearResults[27].Depreciation, 1e-9)
}

func TestProject_OutperformanceSign(t *testing.T) {
	engine := NewCalculationEngine()
	for _, ret := range []float64{2, 6, 10, 14, 20} {
		in := domain.DefaultInputs()
		in.IndexFund.AnnualReturnPercent = ret
		out, err := engine.Project(in)
		require.NoError(t, err)
		assert.Equal(t, out.Summary.Outperformance > 0, out.Summary.RentalWins, "return %v", ret)
	}
}

func TestProject_InvalidInputs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Inputs)
		field  string
	}{
		{"zero holding period", func(in *domain.Inputs) { in.HoldingPeriodYears = 0 }, "holding_period_years"},
		{"zero loan term", func(in *domain.Inputs) { in.Property.LoanTermYears = 0 }, "property.loan_term_years"},
		{"NaN rent", func(in *domain.Inputs) { in.RentalIncome.MonthlyRent = math.NaN() }, "rental_income.monthly_rent"},
		{"infinite rate", func(in *domain.Inputs) { in.Property.InterestRate = math.Inf(1) }, "property.interest_rate"},
		{"nothing invested", func(in *domain.Inputs) {
			in.Property.DownPaymentPercent = 0
			in.Property.ClosingCostsPercent = 0
		}, "property.down_payment_percent"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := domain.DefaultInputs()
			tt.mutate(&in)
			out, err := NewCalculationEngine().Project(in)
			assert.Nil(t, out)
			require.ErrorIs(t, err, ErrInvalidInput)
			var iie *InvalidInputError
			require.True(t, errors.As(err, &iie))
			assert.Equal(t, tt.field, iie.Field)
		})
	}
}

func TestProject_DoesNotMutateInputs(t *testing.T) {
	in := domain.DefaultInputs()
	snapshot := in
	_, err := NewCalculationEngine().Project(in)
	require.NoError(t, err)
	assert.Equal(t, snapshot, in)
}

func TestSetLogger(t *testing.T) {
	ce := NewCalculationEngine()
	log := &recordingLogger{}
	ce.SetLogger(log)
	_, err := ce.Project(domain.DefaultInputs())
	require.NoError(t, err)
	assert.NotEmpty(t, log.debug)

	ce.SetLogger(nil)
	assert.IsType(t, NopLogger{}, ce.Logger)
}

func TestCAGR(t *testing.T) {
	assert.InDelta(t, 0.1, CAGR(1.1*1.1*100, 100, 2), 1e-12)
	assert.Equal(t, 0.0, CAGR(100, 100, 5))
	assert.True(t, math.IsNaN(CAGR(-10, 100, 3)))
}
