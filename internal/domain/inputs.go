package domain

// PropertyInputs describes the purchase, financing and appreciation of the rental property
type PropertyInputs struct {
	PurchasePrice             float64 `yaml:"purchase_price" toml:"purchase_price" json:"purchase_price"`
	AfterRepairValue          float64 `yaml:"after_repair_value" toml:"after_repair_value" json:"after_repair_value"`
	DownPaymentPercent        float64 `yaml:"down_payment_percent" toml:"down_payment_percent" json:"down_payment_percent"`
	ClosingCostsPercent       float64 `yaml:"closing_costs_percent" toml:"closing_costs_percent" json:"closing_costs_percent"`
	RepairCosts               float64 `yaml:"repair_costs" toml:"repair_costs" json:"repair_costs"`
	InterestRate              float64 `yaml:"interest_rate" toml:"interest_rate" json:"interest_rate"`
	LoanTermYears             int     `yaml:"loan_term_years" toml:"loan_term_years" json:"loan_term_years"`
	AnnualAppreciationPercent float64 `yaml:"annual_appreciation_percent" toml:"annual_appreciation_percent" json:"annual_appreciation_percent"`
}

// RentalIncomeInputs describes rent and other income collected from the property
type RentalIncomeInputs struct {
	MonthlyRent             float64 `yaml:"monthly_rent" toml:"monthly_rent" json:"monthly_rent"`
	OtherMonthlyIncome      float64 `yaml:"other_monthly_income" toml:"other_monthly_income" json:"other_monthly_income"`
	VacancyRatePercent      float64 `yaml:"vacancy_rate_percent" toml:"vacancy_rate_percent" json:"vacancy_rate_percent"`
	AnnualRentGrowthPercent float64 `yaml:"annual_rent_growth_percent" toml:"annual_rent_growth_percent" json:"annual_rent_growth_percent"`
}

// OperatingExpenseInputs describes the recurring costs of owning the property
type OperatingExpenseInputs struct {
	PropertyTaxPercent         float64 `yaml:"property_tax_percent" toml:"property_tax_percent" json:"property_tax_percent"`
	InsuranceAnnual            float64 `yaml:"insurance_annual" toml:"insurance_annual" json:"insurance_annual"`
	MaintenancePercent         float64 `yaml:"maintenance_percent" toml:"maintenance_percent" json:"maintenance_percent"`
	PropertyManagementPercent  float64 `yaml:"property_management_percent" toml:"property_management_percent" json:"property_management_percent"`
	HOAMonthly                 float64 `yaml:"hoa_monthly" toml:"hoa_monthly" json:"hoa_monthly"`
	OtherExpensesMonthly       float64 `yaml:"other_expenses_monthly" toml:"other_expenses_monthly" json:"other_expenses_monthly"`
	AnnualExpenseGrowthPercent float64 `yaml:"annual_expense_growth_percent" toml:"annual_expense_growth_percent" json:"annual_expense_growth_percent"`
}

// TaxInputs holds the investor's tax rates and the non-depreciable land share
type TaxInputs struct {
	MarginalTaxRate           float64 `yaml:"marginal_tax_rate" toml:"marginal_tax_rate" json:"marginal_tax_rate"`
	CapitalGainsTaxRate       float64 `yaml:"capital_gains_tax_rate" toml:"capital_gains_tax_rate" json:"capital_gains_tax_rate"`
	DepreciationRecaptureRate float64 `yaml:"depreciation_recapture_rate" toml:"depreciation_recapture_rate" json:"depreciation_recapture_rate"`
	LandValuePercent          float64 `yaml:"land_value_percent" toml:"land_value_percent" json:"land_value_percent"`
}

// SellingInputs holds the costs of disposing of the property at the end of the holding period
type SellingInputs struct {
	SellingCostsPercent float64 `yaml:"selling_costs_percent" toml:"selling_costs_percent" json:"selling_costs_percent"`
}

// IndexFundInputs describes the comparator index fund
type IndexFundInputs struct {
	AnnualReturnPercent  float64 `yaml:"annual_return_percent" toml:"annual_return_percent" json:"annual_return_percent"`
	ExpenseRatioPercent  float64 `yaml:"expense_ratio_percent" toml:"expense_ratio_percent" json:"expense_ratio_percent"`
	DividendYieldPercent float64 `yaml:"dividend_yield_percent" toml:"dividend_yield_percent" json:"dividend_yield_percent"`
	DividendTaxRate      float64 `yaml:"dividend_tax_rate" toml:"dividend_tax_rate" json:"dividend_tax_rate"`
}

// MonteCarloInputs holds the trial count and the standard deviation (in percentage points)
// of every randomized annual rate.
type MonteCarloInputs struct {
	SimulationCount     int     `yaml:"simulation_count" toml:"simulation_count" json:"simulation_count"`
	RentGrowthStdDev    float64 `yaml:"rent_growth_std_dev" toml:"rent_growth_std_dev" json:"rent_growth_std_dev"`
	AppreciationStdDev  float64 `yaml:"appreciation_std_dev" toml:"appreciation_std_dev" json:"appreciation_std_dev"`
	VacancyStdDev       float64 `yaml:"vacancy_std_dev" toml:"vacancy_std_dev" json:"vacancy_std_dev"`
	ExpenseGrowthStdDev float64 `yaml:"expense_growth_std_dev" toml:"expense_growth_std_dev" json:"expense_growth_std_dev"`
	IndexReturnStdDev   float64 `yaml:"index_return_std_dev" toml:"index_return_std_dev" json:"index_return_std_dev"`
}

// Inputs is the complete, immutable snapshot of assumptions for one computation.
// Percentage fields are "per hundred" (7 means 7%). Inputs contains no pointers,
// slices or maps, so plain assignment produces an independent copy.
type Inputs struct {
	Property           PropertyInputs         `yaml:"property" toml:"property" json:"property"`
	RentalIncome       RentalIncomeInputs     `yaml:"rental_income" toml:"rental_income" json:"rental_income"`
	OperatingExpenses  OperatingExpenseInputs `yaml:"operating_expenses" toml:"operating_expenses" json:"operating_expenses"`
	Tax                TaxInputs              `yaml:"tax" toml:"tax" json:"tax"`
	Selling            SellingInputs          `yaml:"selling" toml:"selling" json:"selling"`
	IndexFund          IndexFundInputs        `yaml:"index_fund" toml:"index_fund" json:"index_fund"`
	HoldingPeriodYears int                    `yaml:"holding_period_years" toml:"holding_period_years" json:"holding_period_years"`
	MonteCarlo         MonteCarloInputs       `yaml:"monte_carlo" toml:"monte_carlo" json:"monte_carlo"`
}

// DownPayment returns the cash paid toward the purchase price
func (in Inputs) DownPayment() float64 {
	return in.Property.PurchasePrice * (in.Property.DownPaymentPercent / 100)
}

// ClosingCosts returns the closing costs paid at purchase
func (in Inputs) ClosingCosts() float64 {
	return in.Property.PurchasePrice * (in.Property.ClosingCostsPercent / 100)
}

// TotalInvested returns the cash required to acquire the property: down payment,
// closing costs and repairs. The index fund starts with the same amount.
func (in Inputs) TotalInvested() float64 {
	return in.DownPayment() + in.ClosingCosts() + in.Property.RepairCosts
}

// LoanAmount returns the financed portion of the purchase price
func (in Inputs) LoanAmount() float64 {
	return in.Property.PurchasePrice - in.DownPayment()
}

// DefaultInputs returns the moderate baseline assumptions
func DefaultInputs() Inputs {
	return Inputs{
		Property: PropertyInputs{
			PurchasePrice:             400000,
			AfterRepairValue:          400000,
			DownPaymentPercent:        20,
			ClosingCostsPercent:       3,
			RepairCosts:               0,
			InterestRate:              7,
			LoanTermYears:             30,
			AnnualAppreciationPercent: 3,
		},
		RentalIncome: RentalIncomeInputs{
			MonthlyRent:             2000,
			OtherMonthlyIncome:      0,
			VacancyRatePercent:      5,
			AnnualRentGrowthPercent: 3,
		},
		OperatingExpenses: OperatingExpenseInputs{
			PropertyTaxPercent:         1.2,
			InsuranceAnnual:            1500,
			MaintenancePercent:         1,
			PropertyManagementPercent:  8,
			HOAMonthly:                 0,
			OtherExpensesMonthly:       0,
			AnnualExpenseGrowthPercent: 2.5,
		},
		Tax: TaxInputs{
			MarginalTaxRate:           24,
			CapitalGainsTaxRate:       15,
			DepreciationRecaptureRate: 25,
			LandValuePercent:          20,
		},
		Selling: SellingInputs{
			SellingCostsPercent: 6,
		},
		IndexFund: IndexFundInputs{
			AnnualReturnPercent:  10,
			ExpenseRatioPercent:  0.03,
			DividendYieldPercent: 1.5,
			DividendTaxRate:      15,
		},
		HoldingPeriodYears: 10,
		MonteCarlo: MonteCarloInputs{
			SimulationCount:     5000,
			RentGrowthStdDev:    2,
			AppreciationStdDev:  3,
			VacancyStdDev:       3,
			ExpenseGrowthStdDev: 1.5,
			IndexReturnStdDev:   15,
		},
	}
}
