package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/rental-calculator/internal/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_YAMLKeepsDefaults(t *testing.T) {
	path := writeFile(t, "inputs.yaml", "rental_income:\n"+
		"  monthly_rent: 2500\n"+
		"holding_period_years: 15\n")

	in, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	def := domain.DefaultInputs()
	assert.Equal(t, 2500.0, in.RentalIncome.MonthlyRent)
	assert.Equal(t, 15, in.HoldingPeriodYears)
	assert.Equal(t, def.RentalIncome.VacancyRatePercent, in.RentalIncome.VacancyRatePercent)
	assert.Equal(t, def.Property, in.Property)
	assert.Equal(t, def.MonteCarlo, in.MonteCarlo)
}

func TestLoadFromFile_TOML(t *testing.T) {
	path := writeFile(t, "inputs.toml", "holding_period_years = 20\n\n"+
		"[property]\n"+
		"interest_rate = 6.25\n\n"+
		"[index_fund]\n"+
		"annual_return_percent = 8.5\n")

	in, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 20, in.HoldingPeriodYears)
	assert.Equal(t, 6.25, in.Property.InterestRate)
	assert.Equal(t, 8.5, in.IndexFund.AnnualReturnPercent)
	assert.Equal(t, 30, in.Property.LoanTermYears)
}

func TestLoadFromFile_JSON(t *testing.T) {
	path := writeFile(t, "inputs.json", `{"tax": {"marginal_tax_rate": 32}}`)

	in, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 32.0, in.Tax.MarginalTaxRate)
}

func TestLoadFromFile_ARVSync(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantARV float64
	}{
		{
			name:    "price change syncs ARV",
			content: "property:\n  purchase_price: 300000\n  repair_costs: 20000\n",
			wantARV: 320000,
		},
		{
			name:    "explicit ARV wins",
			content: "property:\n  purchase_price: 300000\n  repair_costs: 20000\n  after_repair_value: 350000\n",
			wantARV: 350000,
		},
		{
			name:    "untouched price keeps default ARV",
			content: "rental_income:\n  monthly_rent: 2100\n",
			wantARV: 400000,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := NewInputParser().LoadFromFile(writeFile(t, "inputs.yml", tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.wantARV, in.Property.AfterRepairValue)
		})
	}
}

func TestLoadFromFile_Errors(t *testing.T) {
	parser := NewInputParser()

	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")

	_, err = parser.LoadFromFile(writeFile(t, "inputs.ini", "x=1"))
	require.ErrorIs(t, err, ErrUnsupportedConfigFormat)

	_, err = parser.LoadFromFile(writeFile(t, "bad.yaml", "property: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")

	_, err = parser.LoadFromFile(writeFile(t, "bad.yaml", "holding_period_years: 0\n"))
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "holding_period_years", verr.Errors[0].Field)
	assert.Equal(t, "Must be between 1 and 50", verr.Errors[0].Message)
}

func TestLoadOver_Preset(t *testing.T) {
	parser := NewInputParser()
	base, err := parser.ApplyPreset("aggressive", domain.DefaultInputs())
	require.NoError(t, err)

	in, err := parser.LoadOver(writeFile(t, "inputs.yaml", "holding_period_years: 12\n"), base)
	require.NoError(t, err)
	assert.Equal(t, 12, in.HoldingPeriodYears)
	assert.Equal(t, 430000.0, in.Property.AfterRepairValue)
	assert.Equal(t, 2400.0, in.RentalIncome.MonthlyRent)
}

func TestApplyPreset(t *testing.T) {
	parser := NewInputParser()
	def := domain.DefaultInputs()

	moderate, err := parser.ApplyPreset("moderate", def)
	require.NoError(t, err)
	assert.Equal(t, def, moderate)

	conservative, err := parser.ApplyPreset("Conservative", def)
	require.NoError(t, err)
	assert.Equal(t, 25.0, conservative.Property.DownPaymentPercent)
	assert.Equal(t, def.Tax, conservative.Tax)

	_, err = parser.ApplyPreset("yolo", def)
	require.ErrorIs(t, err, ErrUnknownPreset)
	assert.Contains(t, err.Error(), "aggressive, conservative, moderate")
}

func TestSaveConfiguration_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	example := parser.CreateExampleConfiguration()
	example.HoldingPeriodYears = 17

	for _, ext := range []string{".yaml", ".toml", ".json"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "inputs"+ext)
			require.NoError(t, parser.SaveConfiguration(*example, path))

			loaded, err := parser.LoadFromFile(path)
			require.NoError(t, err)
			assert.Equal(t, *example, *loaded)
		})
	}

	err := parser.SaveConfiguration(*example, filepath.Join(t.TempDir(), "inputs.xml"))
	require.ErrorIs(t, err, ErrUnsupportedConfigFormat)
}
