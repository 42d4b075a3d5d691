package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/rental-calculator/internal/config"
	"github.com/rpgo/rental-calculator/internal/domain"
)

func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		flagConfig, flagPreset, flagFormat, flagOutput, flagLogLevel = "", "", "console", "", "warn"
	})
	flagConfig, flagPreset, flagFormat, flagOutput, flagLogLevel = "", "", "console", "", "off"
}

func TestLoadInputs_Defaults(t *testing.T) {
	resetFlags(t)
	in, err := loadInputs()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultInputs(), in)
}

func TestLoadInputs_PresetThenFile(t *testing.T) {
	resetFlags(t)
	path := filepath.Join(t.TempDir(), "inputs.toml")
	require.NoError(t, os.WriteFile(path, []byte("holding_period_years = 8\n"), 0o644))

	flagPreset = "conservative"
	flagConfig = path
	in, err := loadInputs()
	require.NoError(t, err)
	assert.Equal(t, 8, in.HoldingPeriodYears)
	assert.Equal(t, 1800.0, in.RentalIncome.MonthlyRent)
}

func TestLoadInputs_UnknownPreset(t *testing.T) {
	resetFlags(t)
	flagPreset = "reckless"
	_, err := loadInputs()
	assert.ErrorIs(t, err, config.ErrUnknownPreset)
}

func TestRunExample(t *testing.T) {
	resetFlags(t)
	path := filepath.Join(t.TempDir(), "example.yaml")
	flagPreset = "aggressive"
	require.NoError(t, runExample(nil, []string{path}))

	loaded, err := config.NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 430000.0, loaded.Property.AfterRepairValue)
}

func TestRunProject_WritesFiles(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	flagFormat = "detailed-csv"
	flagOutput = dir
	require.NoError(t, runProject(nil, nil))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".csv", filepath.Ext(entries[0].Name()))
}

func TestRunSensitivity_UnknownGrid(t *testing.T) {
	resetFlags(t)
	flagGrid = "nope"
	t.Cleanup(func() { flagGrid = "appreciation-vs-rate" })
	assert.Error(t, runSensitivity(nil, nil))
}

func TestRunSimulate_Reproducible(t *testing.T) {
	resetFlags(t)
	flagSimulations, flagSeed, flagWorkers = 200, 7, 2
	t.Cleanup(func() { flagSimulations, flagSeed, flagWorkers = 0, 0, 0 })
	flagFormat = "montecarlo-csv"

	read := func() []byte {
		flagOutput = t.TempDir()
		require.NoError(t, runSimulate(&cobra.Command{}, nil))
		entries, err := os.ReadDir(flagOutput)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		data, err := os.ReadFile(filepath.Join(flagOutput, entries[0].Name()))
		require.NoError(t, err)
		return data
	}
	first := read()
	assert.Contains(t, string(first), "Simulations,200")
	assert.Equal(t, first, read())
}
