package domain

import (
	"encoding/json"
	"math"
)

// AmortizationRow is one month of a fixed-rate loan schedule
type AmortizationRow struct {
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

// AnnualMortgage aggregates the monthly rows that fall in one loan year
type AnnualMortgage struct {
	TotalPayment   float64 `json:"total_payment"`
	TotalPrincipal float64 `json:"total_principal"`
	TotalInterest  float64 `json:"total_interest"`
}

// AnnualCashFlow is the operating breakdown of a single year, before debt service
type AnnualCashFlow struct {
	GrossRent          float64 `json:"gross_rent"`
	OtherIncome        float64 `json:"other_income"`
	Vacancy            float64 `json:"vacancy"`
	EffectiveIncome    float64 `json:"effective_income"`
	PropertyTax        float64 `json:"property_tax"`
	Insurance          float64 `json:"insurance"`
	Maintenance        float64 `json:"maintenance"`
	PropertyManagement float64 `json:"property_management"`
	HOA                float64 `json:"hoa"`
	OtherExpenses      float64 `json:"other_expenses"`
	TotalExpenses      float64 `json:"total_expenses"`
	NOI                float64 `json:"noi"`
}

// YearResult represents the complete projection for a single holding year
type YearResult struct {
	Year int `json:"year"`

	// Property
	PropertyValue float64 `json:"property_value"`
	LoanBalance   float64 `json:"loan_balance"`
	Equity        float64 `json:"equity"`

	// Income and expenses
	AnnualCashFlow

	// Cash flow
	MortgagePayment  float64 `json:"mortgage_payment"`
	PreTaxCashFlow   float64 `json:"pre_tax_cash_flow"`
	Depreciation     float64 `json:"depreciation"`
	TaxableIncome    float64 `json:"taxable_income"`
	TaxBenefit       float64 `json:"tax_benefit"` // positive is a savings, negative a liability
	AfterTaxCashFlow float64 `json:"after_tax_cash_flow"`

	// Returns
	CashOnCashReturn   float64 `json:"cash_on_cash_return"` // percent
	CumulativeCashFlow float64 `json:"cumulative_cash_flow"`
	TotalRentalWealth  float64 `json:"total_rental_wealth"` // equity + cumulative cash flow, before sale costs

	// Index fund
	IndexFundValue         float64 `json:"index_fund_value"`
	IndexFundContributions float64 `json:"index_fund_contributions"` // cumulative

	// Wealth breakdown
	PrincipalPaydown     float64 `json:"principal_paydown"`
	AppreciationGain     float64 `json:"appreciation_gain"`
	CumulativeTaxSavings float64 `json:"cumulative_tax_savings"`
}

// SaleSummary describes the terminal sale of the property
type SaleSummary struct {
	SalePrice             float64 `json:"sale_price"`
	LoanPayoff            float64 `json:"loan_payoff"`
	SellingCosts          float64 `json:"selling_costs"`
	TotalDepreciation     float64 `json:"total_depreciation"`
	DepreciationRecapture float64 `json:"depreciation_recapture"` // recapture tax
	CapitalGain           float64 `json:"capital_gain"`
	CapitalGainsTax       float64 `json:"capital_gains_tax"`
	NetSaleProceeds       float64 `json:"net_sale_proceeds"`
}

// Summary provides the scalar comparison of both strategies
type Summary struct {
	TotalInvested        float64     `json:"total_invested"`
	RentalFinalWealth    float64     `json:"rental_final_wealth"`
	IndexFundFinalWealth float64     `json:"index_fund_final_wealth"`
	RentalCAGR           float64     `json:"rental_cagr"`     // percent
	IndexFundCAGR        float64     `json:"index_fund_cagr"` // percent
	RentalTotalROI       float64     `json:"rental_total_roi"`
	IndexFundTotalROI    float64     `json:"index_fund_total_roi"`
	Outperformance       float64     `json:"outperformance"` // rental minus index fund
	RentalWins           bool        `json:"rental_wins"`
	TotalCashFlow        float64     `json:"total_cash_flow"`
	AverageCashOnCash    float64     `json:"average_cash_on_cash"`
	Sale                 SaleSummary `json:"sale"`
}

// MarshalJSON writes an undefined CAGR (negative final wealth) as null
func (s Summary) MarshalJSON() ([]byte, error) {
	type plain Summary
	return json.Marshal(struct {
		plain
		RentalCAGR    *float64 `json:"rental_cagr"`
		IndexFundCAGR *float64 `json:"index_fund_cagr"`
	}{
		plain:         plain(s),
		RentalCAGR:    finiteOrNil(s.RentalCAGR),
		IndexFundCAGR: finiteOrNil(s.IndexFundCAGR),
	})
}

func finiteOrNil(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// Output is the result of one deterministic projection
type Output struct {
	YearResults []YearResult `json:"year_results"`
	Summary     Summary      `json:"summary"`
}

// FinalYear returns the last projected year. Output always holds at least one year.
func (o *Output) FinalYear() YearResult {
	return o.YearResults[len(o.YearResults)-1]
}
