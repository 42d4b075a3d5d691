package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpgo/rental-calculator/internal/config"
	"github.com/rpgo/rental-calculator/internal/domain"
	"github.com/rpgo/rental-calculator/internal/logging"
	"github.com/rpgo/rental-calculator/internal/output"
)

var (
	flagConfig   string
	flagPreset   string
	flagFormat   string
	flagOutput   string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "rentcalc",
	Short: "Rental property vs. index fund calculator",
	Long: "Compare buying a leveraged rental property against putting the same cash into a\n" +
		"broad index fund: year-by-year projection, sensitivity grids and Monte Carlo.",
	SilenceUsage: true,
	RunE:         runProject,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Inputs file (.yaml, .toml or .json); omitted fields keep defaults")
	rootCmd.PersistentFlags().StringVarP(&flagPreset, "preset", "p", "",
		fmt.Sprintf("Start from a preset (%s)", strings.Join(domain.PresetNames(), ", ")))
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "console",
		fmt.Sprintf("Output format (%s, all)", strings.Join(output.AvailableFormatterNames(), ", ")))
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "Directory for file output (console prints to stdout when empty)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level (debug, info, warn, error, off)")
}

// loadInputs is the shared input path used by all commands: defaults, then the
// preset, then the config file.
func loadInputs() (domain.Inputs, error) {
	parser := config.NewInputParser()
	in := domain.DefaultInputs()

	if flagPreset != "" {
		var err error
		if in, err = parser.ApplyPreset(flagPreset, in); err != nil {
			return in, err
		}
	}

	if flagConfig != "" {
		loaded, err := parser.LoadOver(flagConfig, in)
		if err != nil {
			return in, err
		}
		return *loaded, nil
	}

	if err := parser.ValidateInputs(in); err != nil {
		return in, err
	}
	return in, nil
}

func newLogger() *logging.ZerologLogger {
	return logging.New(flagLogLevel)
}

func writeReport(r *output.Report) error {
	return output.GenerateReport(os.Stdout, r, flagFormat, flagOutput)
}
