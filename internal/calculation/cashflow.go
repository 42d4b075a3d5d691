package calculation

import (
	"math"

	"github.com/rpgo/rental-calculator/internal/domain"
)

// incomeLevels are the grown annual amounts for one year. Value-based expenses
// (property tax, maintenance) and management are derived, not carried here.
type incomeLevels struct {
	grossRent     float64
	otherIncome   float64
	insurance     float64
	hoa           float64
	otherExpenses float64
}

// baseLevels returns the year-1 annual amounts
func baseLevels(in domain.Inputs) incomeLevels {
	return incomeLevels{
		grossRent:     in.RentalIncome.MonthlyRent * 12,
		otherIncome:   in.RentalIncome.OtherMonthlyIncome * 12,
		insurance:     in.OperatingExpenses.InsuranceAnnual,
		hoa:           in.OperatingExpenses.HOAMonthly * 12,
		otherExpenses: in.OperatingExpenses.OtherExpensesMonthly * 12,
	}
}

// grow scales income by rentFactor and fixed expenses by expenseFactor
func (l incomeLevels) grow(rentFactor, expenseFactor float64) incomeLevels {
	return incomeLevels{
		grossRent:     l.grossRent * rentFactor,
		otherIncome:   l.otherIncome * rentFactor,
		insurance:     l.insurance * expenseFactor,
		hoa:           l.hoa * expenseFactor,
		otherExpenses: l.otherExpenses * expenseFactor,
	}
}

// operatingCashFlow applies vacancy and the six expense lines to one year of income.
// Property tax and maintenance scale off the current appreciated value, so they rise
// with assessments as the property appreciates.
func operatingCashFlow(l incomeLevels, vacancyPercent, currentPropertyValue float64, opex domain.OperatingExpenseInputs) domain.AnnualCashFlow {
	vacancy := (l.grossRent + l.otherIncome) * (vacancyPercent / 100)
	effectiveIncome := l.grossRent + l.otherIncome - vacancy

	cf := domain.AnnualCashFlow{
		GrossRent:          l.grossRent,
		OtherIncome:        l.otherIncome,
		Vacancy:            vacancy,
		EffectiveIncome:    effectiveIncome,
		PropertyTax:        currentPropertyValue * (opex.PropertyTaxPercent / 100),
		Insurance:          l.insurance,
		Maintenance:        currentPropertyValue * (opex.MaintenancePercent / 100),
		PropertyManagement: effectiveIncome * (opex.PropertyManagementPercent / 100),
		HOA:                l.hoa,
		OtherExpenses:      l.otherExpenses,
	}
	cf.TotalExpenses = cf.PropertyTax + cf.Insurance + cf.Maintenance + cf.PropertyManagement + cf.HOA + cf.OtherExpenses
	cf.NOI = cf.EffectiveIncome - cf.TotalExpenses
	return cf
}

// CalculateAnnualCashFlow returns the income, expense and NOI breakdown for a 1-indexed
// year given the property's appreciated value in that year.
func CalculateAnnualCashFlow(in domain.Inputs, year int, currentPropertyValue float64) domain.AnnualCashFlow {
	rentGrowthFactor := math.Pow(1+in.RentalIncome.AnnualRentGrowthPercent/100, float64(year-1))
	expenseGrowthFactor := math.Pow(1+in.OperatingExpenses.AnnualExpenseGrowthPercent/100, float64(year-1))

	levels := baseLevels(in).grow(rentGrowthFactor, expenseGrowthFactor)
	return operatingCashFlow(levels, in.RentalIncome.VacancyRatePercent, currentPropertyValue, in.OperatingExpenses)
}
