package calculation

import (
	"math"

	"github.com/rpgo/rental-calculator/internal/domain"
)

// CalculationEngine orchestrates the deterministic rental vs. index fund projection.
// It holds no per-run state; Project is safe to call concurrently.
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Project runs the full year-by-year projection for a snapshot of inputs
func (ce *CalculationEngine) Project(in domain.Inputs) (*domain.Output, error) {
	if err := checkPreconditions(in); err != nil {
		return nil, err
	}

	totalInvested := in.TotalInvested()
	loan := NewLoanSchedule(in.LoanAmount(), in.Property.InterestRate, in.Property.LoanTermYears)
	ce.Logger.Debugf("projecting %d years: invested=%.2f loan=%.2f payment=%.2f",
		in.HoldingPeriodYears, totalInvested, in.LoanAmount(), MonthlyPayment(in.LoanAmount(), in.Property.InterestRate, in.Property.LoanTermYears))

	years := in.HoldingPeriodYears
	results := make([]domain.YearResult, 0, years)
	contributions := make([]float64, 0, years)
	var cumulativeCashFlow, cumulativeTaxSavings float64

	for year := 1; year <= years; year++ {
		value := PropertyValue(in.Property.AfterRepairValue, in.Property.AnnualAppreciationPercent, year)
		balance := loan.BalanceAt(year)
		mortgage := loan.Annual(year)
		cf := CalculateAnnualCashFlow(in, year, value)
		depreciation := DepreciationForYear(in.Property.AfterRepairValue, in.Tax.LandValuePercent, year)

		preTaxCashFlow := cf.NOI - mortgage.TotalPayment
		taxableIncome, taxBenefit := TaxBenefit(cf.NOI, mortgage.TotalInterest, depreciation, in.Tax.MarginalTaxRate)
		afterTaxCashFlow := preTaxCashFlow + taxBenefit

		cumulativeCashFlow += afterTaxCashFlow
		if taxBenefit > 0 {
			cumulativeTaxSavings += taxBenefit
		}
		contributions = append(contributions, opportunityContribution(afterTaxCashFlow))

		results = append(results, domain.YearResult{
			Year:                 year,
			PropertyValue:        value,
			LoanBalance:          balance,
			Equity:               value - balance,
			AnnualCashFlow:       cf,
			MortgagePayment:      mortgage.TotalPayment,
			PreTaxCashFlow:       preTaxCashFlow,
			Depreciation:         depreciation,
			TaxableIncome:        taxableIncome,
			TaxBenefit:           taxBenefit,
			AfterTaxCashFlow:     afterTaxCashFlow,
			CashOnCashReturn:     afterTaxCashFlow / totalInvested * 100,
			CumulativeCashFlow:   cumulativeCashFlow,
			PrincipalPaydown:     mortgage.TotalPrincipal,
			AppreciationGain:     value - in.Property.AfterRepairValue,
			CumulativeTaxSavings: cumulativeTaxSavings,
		})
	}

	indexValues := CalculateIndexFundGrowth(totalInvested, in.IndexFund, years, contributions)

	// Wealth is shown as equity plus cash flow every year so the curve has no
	// discontinuity; sale costs and taxes only enter the terminal comparison.
	var runningContributions float64
	for i := range results {
		runningContributions += contributions[i]
		results[i].IndexFundValue = indexValues[i]
		results[i].IndexFundContributions = runningContributions
		results[i].TotalRentalWealth = results[i].Equity + results[i].CumulativeCashFlow
	}

	last := results[len(results)-1]
	sale := CalculateSaleProceeds(SaleTermsFor(in, last.PropertyValue, last.LoanBalance,
		CumulativeDepreciation(in.Property.AfterRepairValue, in.Tax.LandValuePercent, years)))

	summary := summarize(totalInvested, years, sale, cumulativeCashFlow, indexValues[len(indexValues)-1], results)
	ce.Logger.Debugf("projection complete: rental=%.2f index=%.2f outperformance=%.2f",
		summary.RentalFinalWealth, summary.IndexFundFinalWealth, summary.Outperformance)

	return &domain.Output{YearResults: results, Summary: summary}, nil
}

// summarize builds the scalar comparison from the terminal position of both strategies
func summarize(totalInvested float64, years int, sale domain.SaleSummary, cumulativeCashFlow, indexFinal float64, results []domain.YearResult) domain.Summary {
	rentalFinal := sale.NetSaleProceeds + cumulativeCashFlow
	outperformance := Outperformance(rentalFinal, indexFinal)

	var cocSum float64
	for _, r := range results {
		cocSum += r.CashOnCashReturn
	}

	return domain.Summary{
		TotalInvested:        totalInvested,
		RentalFinalWealth:    rentalFinal,
		IndexFundFinalWealth: indexFinal,
		RentalCAGR:           CAGR(rentalFinal, totalInvested, years) * 100,
		IndexFundCAGR:        CAGR(indexFinal, totalInvested, years) * 100,
		RentalTotalROI:       (rentalFinal - totalInvested) / totalInvested * 100,
		IndexFundTotalROI:    (indexFinal - totalInvested) / totalInvested * 100,
		Outperformance:       outperformance,
		RentalWins:           outperformance > 0,
		TotalCashFlow:        cumulativeCashFlow,
		AverageCashOnCash:    cocSum / float64(years),
		Sale:                 sale,
	}
}

// Outperformance is the rental strategy's terminal wealth minus the index fund's.
// Positive means the rental won.
func Outperformance(rentalFinalWealth, indexFinalWealth float64) float64 {
	return rentalFinalWealth - indexFinalWealth
}

// CAGR returns the compound annual growth rate as a fraction. A negative final wealth
// has no real root and yields NaN, matching the arithmetic.
func CAGR(finalWealth, initial float64, years int) float64 {
	return math.Pow(finalWealth/initial, 1/float64(years)) - 1
}
