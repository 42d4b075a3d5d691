package domain

import "sort"

// PresetName identifies a bundled set of assumptions
type PresetName string

const (
	PresetConservative PresetName = "conservative"
	PresetModerate     PresetName = "moderate"
	PresetAggressive   PresetName = "aggressive"
)

// Preset overrides whole input groups on top of DefaultInputs. A nil group keeps the default.
type Preset struct {
	Property          *PropertyInputs
	RentalIncome      *RentalIncomeInputs
	OperatingExpenses *OperatingExpenseInputs
	IndexFund         *IndexFundInputs
}

var presets = map[PresetName]Preset{
	PresetConservative: {
		RentalIncome: &RentalIncomeInputs{
			MonthlyRent:             1800,
			OtherMonthlyIncome:      0,
			VacancyRatePercent:      8,
			AnnualRentGrowthPercent: 2,
		},
		Property: &PropertyInputs{
			PurchasePrice:             400000,
			AfterRepairValue:          400000,
			DownPaymentPercent:        25,
			ClosingCostsPercent:       3,
			RepairCosts:               0,
			InterestRate:              7.5,
			LoanTermYears:             30,
			AnnualAppreciationPercent: 2,
		},
		OperatingExpenses: &OperatingExpenseInputs{
			PropertyTaxPercent:         1.5,
			InsuranceAnnual:            1800,
			MaintenancePercent:         1.5,
			PropertyManagementPercent:  10,
			HOAMonthly:                 0,
			OtherExpensesMonthly:       100,
			AnnualExpenseGrowthPercent: 3,
		},
		IndexFund: &IndexFundInputs{
			AnnualReturnPercent:  8,
			ExpenseRatioPercent:  0.03,
			DividendYieldPercent: 2,
			DividendTaxRate:      15,
		},
	},
	// moderate is the default set
	PresetModerate: {},
	PresetAggressive: {
		RentalIncome: &RentalIncomeInputs{
			MonthlyRent:             2400,
			OtherMonthlyIncome:      100,
			VacancyRatePercent:      3,
			AnnualRentGrowthPercent: 4,
		},
		Property: &PropertyInputs{
			PurchasePrice:             400000,
			AfterRepairValue:          430000,
			DownPaymentPercent:        15,
			ClosingCostsPercent:       2.5,
			RepairCosts:               15000,
			InterestRate:              6.5,
			LoanTermYears:             30,
			AnnualAppreciationPercent: 5,
		},
		OperatingExpenses: &OperatingExpenseInputs{
			PropertyTaxPercent:         1,
			InsuranceAnnual:            1200,
			MaintenancePercent:         0.8,
			PropertyManagementPercent:  0,
			HOAMonthly:                 0,
			OtherExpensesMonthly:       0,
			AnnualExpenseGrowthPercent: 2,
		},
		IndexFund: &IndexFundInputs{
			AnnualReturnPercent:  10,
			ExpenseRatioPercent:  0.03,
			DividendYieldPercent: 1.5,
			DividendTaxRate:      15,
		},
	},
}

// LookupPreset returns the preset registered under name
func LookupPreset(name PresetName) (Preset, bool) {
	p, ok := presets[name]
	return p, ok
}

// PresetNames returns the registered preset names in sorted order
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, string(n))
	}
	sort.Strings(names)
	return names
}

// Apply merges the preset over base and returns the result
func (p Preset) Apply(base Inputs) Inputs {
	if p.Property != nil {
		base.Property = *p.Property
	}
	if p.RentalIncome != nil {
		base.RentalIncome = *p.RentalIncome
	}
	if p.OperatingExpenses != nil {
		base.OperatingExpenses = *p.OperatingExpenses
	}
	if p.IndexFund != nil {
		base.IndexFund = *p.IndexFund
	}
	return base
}
