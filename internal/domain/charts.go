package domain

// EquityGrowth pairs year-end wealth of both strategies for line charts
type EquityGrowth struct {
	Years        []int     `json:"years"`
	RentalEquity []float64 `json:"rental_equity"`
	IndexFund    []float64 `json:"index_fund"`
}

// WealthBreakdown splits rental wealth into its sources, year by year
type WealthBreakdown struct {
	Years              []int     `json:"years"`
	PrincipalPaydown   []float64 `json:"principal_paydown"` // cumulative
	Appreciation       []float64 `json:"appreciation"`
	CumulativeCashFlow []float64 `json:"cumulative_cash_flow"`
	TaxSavings         []float64 `json:"tax_savings"`
	IndexFund          []float64 `json:"index_fund"`
}

// WaterfallStep is one bar of a cash-flow waterfall. Outflows are negative.
type WaterfallStep struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// CashFlowWaterfall walks one year from effective income to after-tax cash flow
type CashFlowWaterfall struct {
	Year  int             `json:"year"`
	Steps []WaterfallStep `json:"steps"`
}
