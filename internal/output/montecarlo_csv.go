package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// MonteCarloCSV exports the per-year percentile bands of a Monte Carlo run, followed
// by a blank line and the terminal statistics.
type MonteCarloCSV struct{}

func (m MonteCarloCSV) Name() string      { return "montecarlo-csv" }
func (m MonteCarloCSV) Extension() string { return "csv" }

func (m MonteCarloCSV) Format(r *Report) ([]byte, error) {
	if r.MonteCarlo == nil {
		return nil, fmt.Errorf("%w: monte carlo", ErrMissingSection)
	}
	mc := r.MonteCarlo
	b := mc.Bands

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{
		"Year",
		"RentalP10", "RentalP25", "RentalP50", "RentalP75", "RentalP90",
		"IndexP10", "IndexP25", "IndexP50", "IndexP75", "IndexP90",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	for i, year := range b.Years {
		row := []string{
			intToString(year),
			formatPlain(b.Rental.P10[i]), formatPlain(b.Rental.P25[i]), formatPlain(b.Rental.P50[i]),
			formatPlain(b.Rental.P75[i]), formatPlain(b.Rental.P90[i]),
			formatPlain(b.Index.P10[i]), formatPlain(b.Index.P25[i]), formatPlain(b.Index.P50[i]),
			formatPlain(b.Index.P75[i]), formatPlain(b.Index.P90[i]),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write data row: %w", err)
		}
	}

	summary := [][]string{
		{},
		{"Metric", "Rental", "IndexFund"},
		{"Mean", formatPlain(mc.RentalMean), formatPlain(mc.IndexMean)},
		{"Median", formatPlain(mc.RentalMedian), formatPlain(mc.IndexMedian)},
		{"Best", formatPlain(mc.RentalBest), formatPlain(mc.IndexBest)},
		{"Worst", formatPlain(mc.RentalWorst), formatPlain(mc.IndexWorst)},
		{"ProbRentalWinsPercent", formatPlain(mc.ProbRentalWins), ""},
		{"Simulations", intToString(mc.NumSimulations), ""},
		{"Seed", fmt.Sprintf("%d", mc.Seed), ""},
	}
	if err := w.WriteAll(summary); err != nil {
		return nil, fmt.Errorf("failed to write summary: %w", err)
	}
	return buf.Bytes(), nil
}
