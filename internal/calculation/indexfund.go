package calculation

import "github.com/rpgo/rental-calculator/internal/domain"

// EffectiveIndexReturn converts a gross total return (percent) into the after-fee,
// after-dividend-tax growth rate as a fraction. The price component is the return net
// of fees less the dividend yield; dividends are added back after tax.
func EffectiveIndexReturn(grossReturnPercent float64, fund domain.IndexFundInputs) float64 {
	divYield := fund.DividendYieldPercent / 100
	divTax := fund.DividendTaxRate / 100

	priceReturn := (grossReturnPercent-fund.ExpenseRatioPercent)/100 - divYield
	afterTaxDivReturn := divYield * (1 - divTax)
	return priceReturn + afterTaxDivReturn
}

// CalculateIndexFundGrowth returns the year-end value of the index fund for each of
// years years. contributions[y] is added after year y's growth; missing entries are zero.
func CalculateIndexFundGrowth(initialInvestment float64, fund domain.IndexFundInputs, years int, contributions []float64) []float64 {
	effectiveReturn := EffectiveIndexReturn(fund.AnnualReturnPercent, fund)

	values := make([]float64, 0, years)
	value := initialInvestment
	for y := 0; y < years; y++ {
		value *= 1 + effectiveReturn
		if y < len(contributions) {
			value += contributions[y]
		}
		values = append(values, value)
	}
	return values
}

// opportunityContribution is the capital an investor would otherwise have had to
// inject to cover a negative after-tax cash flow.
func opportunityContribution(afterTaxCashFlow float64) float64 {
	if afterTaxCashFlow < 0 {
		return -afterTaxCashFlow
	}
	return 0
}
