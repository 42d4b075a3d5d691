package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/rental-calculator/internal/config"
)

var exampleCmd = &cobra.Command{
	Use:   "example [file]",
	Short: "Write an example inputs file (format chosen by extension)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExample,
}

func init() {
	rootCmd.AddCommand(exampleCmd)
}

func runExample(_ *cobra.Command, args []string) error {
	filename := "rentcalc.yaml"
	if len(args) == 1 {
		filename = args[0]
	}

	parser := config.NewInputParser()
	example := parser.CreateExampleConfiguration()
	if flagPreset != "" {
		applied, err := parser.ApplyPreset(flagPreset, *example)
		if err != nil {
			return err
		}
		example = &applied
	}

	if err := parser.SaveConfiguration(*example, filename); err != nil {
		return err
	}
	fmt.Printf("Example configuration written to %s\n", filename)
	return nil
}
