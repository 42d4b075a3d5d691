package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/rental-calculator/internal/domain"
)

func TestBuildWealthBreakdown(t *testing.T) {
	out, err := NewCalculationEngine().Project(domain.DefaultInputs())
	require.NoError(t, err)

	wb := BuildWealthBreakdown(out)
	require.Len(t, wb.Years, 10)
	last := out.FinalYear()
	// principal paid down equals the loan reduction
	assert.InDelta(t, domain.DefaultInputs().LoanAmount()-last.LoanBalance, wb.PrincipalPaydown[9], 1e-6)
	assert.Equal(t, last.AppreciationGain, wb.Appreciation[9])
	assert.Equal(t, last.CumulativeCashFlow, wb.CumulativeCashFlow[9])
	assert.Equal(t, last.CumulativeTaxSavings, wb.TaxSavings[9])
	assert.Equal(t, last.IndexFundValue, wb.IndexFund[9])

	g := EquityGrowthSeries(out)
	assert.Equal(t, wb.Years, g.Years)
	assert.Equal(t, last.TotalRentalWealth, g.RentalEquity[9])
}

func TestBuildCashFlowWaterfall(t *testing.T) {
	out, err := NewCalculationEngine().Project(domain.DefaultInputs())
	require.NoError(t, err)

	wf, err := BuildCashFlowWaterfall(out, 1)
	require.NoError(t, err)
	require.Len(t, wf.Steps, 10)

	// every step except the total sums to the after-tax cash flow
	var sum float64
	for _, s := range wf.Steps[:len(wf.Steps)-1] {
		sum += s.Value
	}
	total := wf.Steps[len(wf.Steps)-1]
	assert.Equal(t, "After-Tax Cash Flow", total.Category)
	assert.InDelta(t, total.Value, sum, 1e-6)

	_, err = BuildCashFlowWaterfall(out, 0)
	assert.Error(t, err)
	_, err = BuildCashFlowWaterfall(out, 11)
	assert.Error(t, err)
}
