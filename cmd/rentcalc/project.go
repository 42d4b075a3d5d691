package main

import (
	"github.com/spf13/cobra"

	"github.com/rpgo/rental-calculator/internal/calculation"
	"github.com/rpgo/rental-calculator/internal/output"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Year-by-year deterministic projection of both strategies",
	RunE:  runProject,
}

func init() {
	rootCmd.AddCommand(projectCmd)
}

func runProject(_ *cobra.Command, _ []string) error {
	in, err := loadInputs()
	if err != nil {
		return err
	}

	engine := calculation.NewCalculationEngine()
	engine.SetLogger(newLogger())
	out, err := engine.Project(in)
	if err != nil {
		return err
	}

	return writeReport(&output.Report{Inputs: in, Projection: out})
}
