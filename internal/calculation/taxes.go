package calculation

import "github.com/rpgo/rental-calculator/internal/domain"

// TaxBenefit computes the year's taxable rental income and its signed effect on cash flow.
//
// A paper loss (taxable < 0) offsets other income and yields a positive benefit of
// |taxable| * marginal rate. Positive taxable income yields a negative benefit (a
// liability). The benefit is added directly to pre-tax cash flow.
func TaxBenefit(noi, mortgageInterest, depreciation, marginalTaxRate float64) (taxableIncome, benefit float64) {
	taxableIncome = noi - mortgageInterest - depreciation
	if taxableIncome < 0 {
		return taxableIncome, -taxableIncome * (marginalTaxRate / 100)
	}
	return taxableIncome, -(taxableIncome * (marginalTaxRate / 100))
}

// SaleTerms are the facts needed to settle the sale at the end of the holding period
type SaleTerms struct {
	SalePrice                 float64
	LoanBalance               float64
	PurchasePrice             float64
	RepairCosts               float64
	SellingCostsPercent       float64
	TotalDepreciation         float64
	CapitalGainsTaxRate       float64
	DepreciationRecaptureRate float64
}

// SaleTermsFor assembles sale terms from inputs and the final-year position
func SaleTermsFor(in domain.Inputs, salePrice, loanBalance, totalDepreciation float64) SaleTerms {
	return SaleTerms{
		SalePrice:                 salePrice,
		LoanBalance:               loanBalance,
		PurchasePrice:             in.Property.PurchasePrice,
		RepairCosts:               in.Property.RepairCosts,
		SellingCostsPercent:       in.Selling.SellingCostsPercent,
		TotalDepreciation:         totalDepreciation,
		CapitalGainsTaxRate:       in.Tax.CapitalGainsTaxRate,
		DepreciationRecaptureRate: in.Tax.DepreciationRecaptureRate,
	}
}

// CalculateSaleProceeds taxes the gain on sale and returns the net cash to the seller.
// Claimed depreciation is recaptured first at the recapture rate; only the remainder
// of the gain is taxed at the capital-gains rate.
func CalculateSaleProceeds(t SaleTerms) domain.SaleSummary {
	sellingCosts := t.SalePrice * (t.SellingCostsPercent / 100)
	costBasis := t.PurchasePrice + t.RepairCosts - t.TotalDepreciation
	capitalGain := max(0, t.SalePrice-sellingCosts-costBasis)

	recaptureAmount := min(t.TotalDepreciation, capitalGain)
	regularGain := max(0, capitalGain-recaptureAmount)

	recaptureTax := recaptureAmount * (t.DepreciationRecaptureRate / 100)
	capitalGainsTax := regularGain * (t.CapitalGainsTaxRate / 100)

	return domain.SaleSummary{
		SalePrice:             t.SalePrice,
		LoanPayoff:            t.LoanBalance,
		SellingCosts:          sellingCosts,
		TotalDepreciation:     t.TotalDepreciation,
		DepreciationRecapture: recaptureTax,
		CapitalGain:           capitalGain,
		CapitalGainsTax:       capitalGainsTax,
		NetSaleProceeds:       t.SalePrice - t.LoanBalance - sellingCosts - recaptureTax - capitalGainsTax,
	}
}
