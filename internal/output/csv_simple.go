package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// CSVSummarizer implements the summary CSV output (one row per metric, one column per strategy).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "csv" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(r *Report) ([]byte, error) {
	if r.Projection == nil {
		return nil, fmt.Errorf("%w: projection", ErrMissingSection)
	}
	s := r.Projection.Summary

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	rows := [][]string{
		{"Metric", "Rental", "IndexFund"},
		{"TotalInvested", formatPlain(s.TotalInvested), formatPlain(s.TotalInvested)},
		{"FinalWealth", formatPlain(s.RentalFinalWealth), formatPlain(s.IndexFundFinalWealth)},
		{"CAGRPercent", formatPlain(s.RentalCAGR), formatPlain(s.IndexFundCAGR)},
		{"TotalROIPercent", formatPlain(s.RentalTotalROI), formatPlain(s.IndexFundTotalROI)},
		{"Outperformance", formatPlain(s.Outperformance), ""},
		{"RentalWins", boolToString(s.RentalWins), ""},
		{"TotalCashFlow", formatPlain(s.TotalCashFlow), ""},
		{"AverageCashOnCashPercent", formatPlain(s.AverageCashOnCash), ""},
		{"SalePrice", formatPlain(s.Sale.SalePrice), ""},
		{"SellingCosts", formatPlain(s.Sale.SellingCosts), ""},
		{"LoanPayoff", formatPlain(s.Sale.LoanPayoff), ""},
		{"DepreciationRecaptureTax", formatPlain(s.Sale.DepreciationRecapture), ""},
		{"CapitalGain", formatPlain(s.Sale.CapitalGain), ""},
		{"CapitalGainsTax", formatPlain(s.Sale.CapitalGainsTax), ""},
		{"NetSaleProceeds", formatPlain(s.Sale.NetSaleProceeds), ""},
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
