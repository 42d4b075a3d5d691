package domain

// Field names a single numeric input by its dotted config path
type Field struct {
	Path  string
	Value float64
}

// Fields enumerates every numeric input in a stable order. Integer fields are widened.
func (in Inputs) Fields() []Field {
	p, r, o, t := in.Property, in.RentalIncome, in.OperatingExpenses, in.Tax
	return []Field{
		{"property.purchase_price", p.PurchasePrice},
		{"property.after_repair_value", p.AfterRepairValue},
		{"property.down_payment_percent", p.DownPaymentPercent},
		{"property.closing_costs_percent", p.ClosingCostsPercent},
		{"property.repair_costs", p.RepairCosts},
		{"property.interest_rate", p.InterestRate},
		{"property.loan_term_years", float64(p.LoanTermYears)},
		{"property.annual_appreciation_percent", p.AnnualAppreciationPercent},
		{"rental_income.monthly_rent", r.MonthlyRent},
		{"rental_income.other_monthly_income", r.OtherMonthlyIncome},
		{"rental_income.vacancy_rate_percent", r.VacancyRatePercent},
		{"rental_income.annual_rent_growth_percent", r.AnnualRentGrowthPercent},
		{"operating_expenses.property_tax_percent", o.PropertyTaxPercent},
		{"operating_expenses.insurance_annual", o.InsuranceAnnual},
		{"operating_expenses.maintenance_percent", o.MaintenancePercent},
		{"operating_expenses.property_management_percent", o.PropertyManagementPercent},
		{"operating_expenses.hoa_monthly", o.HOAMonthly},
		{"operating_expenses.other_expenses_monthly", o.OtherExpensesMonthly},
		{"operating_expenses.annual_expense_growth_percent", o.AnnualExpenseGrowthPercent},
		{"tax.marginal_tax_rate", t.MarginalTaxRate},
		{"tax.capital_gains_tax_rate", t.CapitalGainsTaxRate},
		{"tax.depreciation_recapture_rate", t.DepreciationRecaptureRate},
		{"tax.land_value_percent", t.LandValuePercent},
		{"selling.selling_costs_percent", in.Selling.SellingCostsPercent},
		{"index_fund.annual_return_percent", in.IndexFund.AnnualReturnPercent},
		{"index_fund.expense_ratio_percent", in.IndexFund.ExpenseRatioPercent},
		{"index_fund.dividend_yield_percent", in.IndexFund.DividendYieldPercent},
		{"index_fund.dividend_tax_rate", in.IndexFund.DividendTaxRate},
		{"holding_period_years", float64(in.HoldingPeriodYears)},
		{"monte_carlo.simulation_count", float64(in.MonteCarlo.SimulationCount)},
		{"monte_carlo.rent_growth_std_dev", in.MonteCarlo.RentGrowthStdDev},
		{"monte_carlo.appreciation_std_dev", in.MonteCarlo.AppreciationStdDev},
		{"monte_carlo.vacancy_std_dev", in.MonteCarlo.VacancyStdDev},
		{"monte_carlo.expense_growth_std_dev", in.MonteCarlo.ExpenseGrowthStdDev},
		{"monte_carlo.index_return_std_dev", in.MonteCarlo.IndexReturnStdDev},
	}
}
