package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpgo/rental-calculator/internal/calculation"
	"github.com/rpgo/rental-calculator/internal/output"
)

var flagGrid string

var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity",
	Short: "Sweep two inputs and report rental outperformance for every pair",
	RunE:  runSensitivity,
}

func init() {
	sensitivityCmd.Flags().StringVarP(&flagGrid, "grid", "g", "appreciation-vs-rate",
		fmt.Sprintf("Built-in grid (%s)", strings.Join(calculation.GridNames(), ", ")))
	rootCmd.AddCommand(sensitivityCmd)
}

func runSensitivity(_ *cobra.Command, _ []string) error {
	in, err := loadInputs()
	if err != nil {
		return err
	}
	grid, err := calculation.GridByName(flagGrid)
	if err != nil {
		return err
	}

	engine := calculation.NewCalculationEngine()
	engine.SetLogger(newLogger())
	out, err := engine.Project(in)
	if err != nil {
		return err
	}
	heatmap, err := engine.Heatmap(in, grid)
	if err != nil {
		return err
	}

	return writeReport(&output.Report{Inputs: in, Projection: out, Heatmap: heatmap})
}
