package config

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/rental-calculator/internal/domain"
)

func TestRules(t *testing.T) {
	tests := []struct {
		name    string
		rule    Rule
		value   float64
		valid   bool
		message string
	}{
		{"required ok", Required, 0, true, ""},
		{"required NaN", Required, math.NaN(), false, "This field is required"},
		{"min ok", MinValue(1), 1, true, ""},
		{"min fail", MinValue(1), 0.5, false, "Must be at least 1"},
		{"max ok", MaxValue(2.5), 2.5, true, ""},
		{"max fail", MaxValue(2.5), 3, false, "Must be at most 2.5"},
		{"range ok", Range(0, 100), 50, true, ""},
		{"range low", Range(0, 100), -1, false, "Must be between 0 and 100"},
		{"range high", Range(-20, 30), 31, false, "Must be between -20 and 30"},
		{"positive ok", Positive, 0.01, true, ""},
		{"positive zero", Positive, 0, false, "Must be positive"},
		{"non-negative zero", NonNegative, 0, true, ""},
		{"non-negative fail", NonNegative, -5, false, "Cannot be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.rule(tt.value)
			assert.Equal(t, tt.valid, r.Valid)
			assert.Equal(t, tt.message, r.Message)
		})
	}
}

func TestValidateInputs(t *testing.T) {
	require.NoError(t, ValidateInputs(domain.DefaultInputs()))

	in := domain.DefaultInputs()
	in.Property.PurchasePrice = 0
	in.RentalIncome.MonthlyRent = math.NaN()
	in.MonteCarlo.IndexReturnStdDev = -1

	err := ValidateInputs(in)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []FieldError{
		{Field: "property.purchase_price", Message: "Must be positive"},
		{Field: "rental_income.monthly_rent", Message: "This field is required"},
		{Field: "monte_carlo.index_return_std_dev", Message: "Cannot be negative"},
	}, verr.Errors)
	assert.Contains(t, err.Error(), "property.purchase_price: Must be positive")
}

func TestEveryFieldHasRules(t *testing.T) {
	for _, f := range domain.DefaultInputs().Fields() {
		_, found := fieldRules[f.Path]
		assert.True(t, found, "no rules for %s", f.Path)
	}
}

func TestPresetsAreValid(t *testing.T) {
	parser := NewInputParser()
	for _, name := range domain.PresetNames() {
		in, err := parser.ApplyPreset(name, domain.DefaultInputs())
		require.NoError(t, err)
		assert.NoError(t, ValidateInputs(in), name)
	}
}
