package calculation

import (
	"fmt"

	"github.com/rpgo/rental-calculator/internal/domain"
)

// EquityGrowthSeries extracts the two wealth curves from a projection
func EquityGrowthSeries(out *domain.Output) domain.EquityGrowth {
	g := domain.EquityGrowth{
		Years:        make([]int, len(out.YearResults)),
		RentalEquity: make([]float64, len(out.YearResults)),
		IndexFund:    make([]float64, len(out.YearResults)),
	}
	for i, r := range out.YearResults {
		g.Years[i] = r.Year
		g.RentalEquity[i] = r.TotalRentalWealth
		g.IndexFund[i] = r.IndexFundValue
	}
	return g
}

// BuildWealthBreakdown returns the per-year sources of rental wealth. Principal paydown
// is accumulated here since each YearResult only carries that year's principal.
func BuildWealthBreakdown(out *domain.Output) domain.WealthBreakdown {
	n := len(out.YearResults)
	wb := domain.WealthBreakdown{
		Years:              make([]int, n),
		PrincipalPaydown:   make([]float64, n),
		Appreciation:       make([]float64, n),
		CumulativeCashFlow: make([]float64, n),
		TaxSavings:         make([]float64, n),
		IndexFund:          make([]float64, n),
	}
	var principal float64
	for i, r := range out.YearResults {
		principal += r.PrincipalPaydown
		wb.Years[i] = r.Year
		wb.PrincipalPaydown[i] = principal
		wb.Appreciation[i] = r.AppreciationGain
		wb.CumulativeCashFlow[i] = r.CumulativeCashFlow
		wb.TaxSavings[i] = r.CumulativeTaxSavings
		wb.IndexFund[i] = r.IndexFundValue
	}
	return wb
}

// BuildCashFlowWaterfall returns the waterfall for a 1-indexed year of the projection
func BuildCashFlowWaterfall(out *domain.Output, year int) (domain.CashFlowWaterfall, error) {
	if year < 1 || year > len(out.YearResults) {
		return domain.CashFlowWaterfall{}, fmt.Errorf("waterfall year %d outside projection of %d years", year, len(out.YearResults))
	}
	r := out.YearResults[year-1]
	return domain.CashFlowWaterfall{
		Year: year,
		Steps: []domain.WaterfallStep{
			{Category: "Effective Income", Value: r.EffectiveIncome},
			{Category: "Property Tax", Value: -r.PropertyTax},
			{Category: "Insurance", Value: -r.Insurance},
			{Category: "Maintenance", Value: -r.Maintenance},
			{Category: "Management", Value: -r.PropertyManagement},
			{Category: "HOA", Value: -r.HOA},
			{Category: "Other", Value: -r.OtherExpenses},
			{Category: "Debt Service", Value: -r.MortgagePayment},
			{Category: "Tax Benefit", Value: r.TaxBenefit},
			{Category: "After-Tax Cash Flow", Value: r.AfterTaxCashFlow},
		},
	}, nil
}
