package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rpgo/rental-calculator/internal/domain"
)

// ValidationResult is the outcome of a single field check
type ValidationResult struct {
	Valid   bool
	Message string
}

var ok = ValidationResult{Valid: true}

// Rule checks one numeric value
type Rule func(v float64) ValidationResult

// Required rejects NaN, the only "missing" value a float can hold
func Required(v float64) ValidationResult {
	if math.IsNaN(v) {
		return ValidationResult{Message: "This field is required"}
	}
	return ok
}

// MinValue rejects values below min
func MinValue(min float64) Rule {
	return func(v float64) ValidationResult {
		if v < min {
			return ValidationResult{Message: "Must be at least " + formatBound(min)}
		}
		return ok
	}
}

// MaxValue rejects values above max
func MaxValue(max float64) Rule {
	return func(v float64) ValidationResult {
		if v > max {
			return ValidationResult{Message: "Must be at most " + formatBound(max)}
		}
		return ok
	}
}

// Range rejects values outside [min, max]
func Range(min, max float64) Rule {
	return func(v float64) ValidationResult {
		if v < min || v > max {
			return ValidationResult{Message: fmt.Sprintf("Must be between %s and %s", formatBound(min), formatBound(max))}
		}
		return ok
	}
}

// Positive rejects zero and negative values
func Positive(v float64) ValidationResult {
	if v <= 0 {
		return ValidationResult{Message: "Must be positive"}
	}
	return ok
}

// NonNegative rejects negative values
func NonNegative(v float64) ValidationResult {
	if v < 0 {
		return ValidationResult{Message: "Cannot be negative"}
	}
	return ok
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// fieldRules maps a dotted input path to its checks. Required is applied to every field.
var fieldRules = map[string][]Rule{
	"property.purchase_price":                         {Positive},
	"property.after_repair_value":                     {Positive},
	"property.down_payment_percent":                   {Range(0, 100)},
	"property.closing_costs_percent":                  {Range(0, 100)},
	"property.repair_costs":                           {NonNegative},
	"property.interest_rate":                          {Range(0, 30)},
	"property.loan_term_years":                        {Range(1, 50)},
	"property.annual_appreciation_percent":            {Range(-20, 30)},
	"rental_income.monthly_rent":                      {NonNegative},
	"rental_income.other_monthly_income":              {NonNegative},
	"rental_income.vacancy_rate_percent":              {Range(0, 100)},
	"rental_income.annual_rent_growth_percent":        {Range(-20, 30)},
	"operating_expenses.property_tax_percent":         {Range(0, 100)},
	"operating_expenses.insurance_annual":             {NonNegative},
	"operating_expenses.maintenance_percent":          {Range(0, 100)},
	"operating_expenses.property_management_percent":  {Range(0, 100)},
	"operating_expenses.hoa_monthly":                  {NonNegative},
	"operating_expenses.other_expenses_monthly":       {NonNegative},
	"operating_expenses.annual_expense_growth_percent": {Range(-20, 30)},
	"tax.marginal_tax_rate":                           {Range(0, 100)},
	"tax.capital_gains_tax_rate":                      {Range(0, 100)},
	"tax.depreciation_recapture_rate":                 {Range(0, 100)},
	"tax.land_value_percent":                          {Range(0, 100)},
	"selling.selling_costs_percent":                   {Range(0, 100)},
	"index_fund.annual_return_percent":                {Range(-50, 100)},
	"index_fund.expense_ratio_percent":                {Range(0, 100)},
	"index_fund.dividend_yield_percent":               {Range(0, 100)},
	"index_fund.dividend_tax_rate":                    {Range(0, 100)},
	"holding_period_years":                            {Range(1, 50)},
	"monte_carlo.simulation_count":                    {Range(1, 100000)},
	"monte_carlo.rent_growth_std_dev":                 {NonNegative},
	"monte_carlo.appreciation_std_dev":                {NonNegative},
	"monte_carlo.vacancy_std_dev":                     {NonNegative},
	"monte_carlo.expense_growth_std_dev":              {NonNegative},
	"monte_carlo.index_return_std_dev":                {NonNegative},
}

// FieldError is a failed check on one input
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every failed field, in input order
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "invalid inputs: " + strings.Join(parts, "; ")
}

// ValidateField runs Required and then the field's rules, stopping at the first failure
func ValidateField(path string, v float64) ValidationResult {
	if r := Required(v); !r.Valid {
		return r
	}
	for _, rule := range fieldRules[path] {
		if r := rule(v); !r.Valid {
			return r
		}
	}
	return ok
}

// ValidateInputs checks every field of in and returns a *ValidationError listing all failures
func ValidateInputs(in domain.Inputs) error {
	var errs []FieldError
	for _, f := range in.Fields() {
		if r := ValidateField(f.Path, f.Value); !r.Valid {
			errs = append(errs, FieldError{Field: f.Path, Message: r.Message})
		}
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
