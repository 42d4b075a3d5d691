package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/rental-calculator/internal/calculation"
	"github.com/rpgo/rental-calculator/internal/domain"
)

// ConsoleFormatter renders a styled terminal summary of the report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(r *Report) ([]byte, error) {
	if r.Projection == nil {
		return nil, fmt.Errorf("%w: projection", ErrMissingSection)
	}
	s := r.Projection.Summary

	var buf bytes.Buffer
	fmt.Fprintln(&buf, renderTitle("RENTAL PROPERTY VS. INDEX FUND"))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "  %s %s over %d years\n\n",
		mutedStyle.Render("Total invested:"), valueStyle.Render(FormatCurrency(s.TotalInvested)), len(r.Projection.YearResults))

	fmt.Fprint(&buf, renderTable(table{
		Title:   "Summary",
		Headers: []string{"Metric", "Rental", "Index Fund"},
		Rows: [][]string{
			{"Final Wealth", FormatCurrency(s.RentalFinalWealth), FormatCurrency(s.IndexFundFinalWealth)},
			{"CAGR", FormatPercentage(s.RentalCAGR), FormatPercentage(s.IndexFundCAGR)},
			{"Total ROI", FormatPercentage(s.RentalTotalROI), FormatPercentage(s.IndexFundTotalROI)},
			{"Avg Cash-on-Cash", FormatPercentage(s.AverageCashOnCash), ""},
			{"Total Cash Flow", FormatCurrency(s.TotalCashFlow), ""},
		},
	}))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "  %s\n\n", verdict(s))

	fmt.Fprint(&buf, renderTable(table{
		Title:   "Sale at End of Holding Period",
		Headers: []string{"Item", "Amount"},
		Rows: [][]string{
			{"Sale Price", FormatCurrency(s.Sale.SalePrice)},
			{"Selling Costs", FormatCurrency(-s.Sale.SellingCosts)},
			{"Loan Payoff", FormatCurrency(-s.Sale.LoanPayoff)},
			{"Depreciation Recapture Tax", FormatCurrency(-s.Sale.DepreciationRecapture)},
			{"Capital Gains Tax", FormatCurrency(-s.Sale.CapitalGainsTax)},
			{"Net Sale Proceeds", FormatCurrency(s.Sale.NetSaleProceeds)},
		},
	}))
	fmt.Fprintln(&buf)

	years := make([][]string, 0, len(r.Projection.YearResults))
	for _, y := range r.Projection.YearResults {
		years = append(years, []string{
			intToString(y.Year),
			FormatCompactCurrency(y.PropertyValue),
			FormatCompactCurrency(y.Equity),
			FormatCurrency(y.AfterTaxCashFlow),
			FormatPercentage(y.CashOnCashReturn),
			FormatCompactCurrency(y.TotalRentalWealth),
			FormatCompactCurrency(y.IndexFundValue),
		})
	}
	fmt.Fprint(&buf, renderTable(table{
		Title:   "Year by Year",
		Headers: []string{"Year", "Value", "Equity", "After-Tax CF", "CoC", "Rental Wealth", "Index Fund"},
		Rows:    years,
	}))
	fmt.Fprintln(&buf)
	writeWealthSources(&buf, calculation.BuildWealthBreakdown(r.Projection))
	fmt.Fprintln(&buf)
	if err := writeWaterfall(&buf, r.Projection, 1); err != nil {
		return nil, err
	}

	if mc := r.MonteCarlo; mc != nil {
		fmt.Fprintln(&buf)
		writeMonteCarlo(&buf, mc)
	}
	if h := r.Heatmap; h != nil {
		fmt.Fprintln(&buf)
		writeHeatmap(&buf, h)
	}
	return buf.Bytes(), nil
}

func verdict(s domain.Summary) string {
	if s.RentalWins {
		return rentalStyle.Render("Rental wins") + " by " + positiveStyle.Render(FormatCurrency(s.Outperformance))
	}
	return indexStyle.Render("Index fund wins") + " by " + negativeStyle.Render(FormatCurrency(-s.Outperformance))
}

// writeWealthSources splits the final year's rental wealth into where it came from
func writeWealthSources(buf *bytes.Buffer, wb domain.WealthBreakdown) {
	last := len(wb.Years) - 1
	fmt.Fprint(buf, renderTable(table{
		Title:   fmt.Sprintf("Sources of Rental Wealth (Year %d)", wb.Years[last]),
		Headers: []string{"Source", "Amount"},
		Rows: [][]string{
			{"Principal Paydown", FormatCurrency(wb.PrincipalPaydown[last])},
			{"Appreciation", FormatCurrency(wb.Appreciation[last])},
			{"Cumulative Cash Flow", FormatCurrency(wb.CumulativeCashFlow[last])},
			{"Tax Savings", FormatCurrency(wb.TaxSavings[last])},
			{"Index Fund", FormatCurrency(wb.IndexFund[last])},
		},
	}))
}

func writeWaterfall(buf *bytes.Buffer, out *domain.Output, year int) error {
	wf, err := calculation.BuildCashFlowWaterfall(out, year)
	if err != nil {
		return err
	}
	rows := make([][]string, len(wf.Steps))
	for i, step := range wf.Steps {
		rows[i] = []string{step.Category, FormatCurrency(step.Value)}
	}
	fmt.Fprint(buf, renderTable(table{
		Title:   fmt.Sprintf("Cash Flow Waterfall (Year %d)", wf.Year),
		Headers: []string{"Step", "Amount"},
		Rows:    rows,
	}))
	return nil
}

func writeMonteCarlo(buf *bytes.Buffer, mc *domain.MonteCarloSummary) {
	fmt.Fprint(buf, renderTable(table{
		Title:   fmt.Sprintf("Monte Carlo (%d simulations)", mc.NumSimulations),
		Headers: []string{"Terminal Wealth", "Rental", "Index Fund"},
		Rows: [][]string{
			{"Mean", FormatCurrency(mc.RentalMean), FormatCurrency(mc.IndexMean)},
			{"Median", FormatCurrency(mc.RentalMedian), FormatCurrency(mc.IndexMedian)},
			{"Best", FormatCurrency(mc.RentalBest), FormatCurrency(mc.IndexBest)},
			{"Worst", FormatCurrency(mc.RentalWorst), FormatCurrency(mc.IndexWorst)},
		},
	}))
	fmt.Fprintf(buf, "\n  %s %s\n", mutedStyle.Render("Probability rental wins:"),
		valueStyle.Render(FormatPercentage(mc.ProbRentalWins)))
}

func writeHeatmap(buf *bytes.Buffer, h *domain.SensitivityHeatmap) {
	headers := append([]string{h.YName + " \\ " + h.XName}, h.XLabels...)
	rows := make([][]string, len(h.YLabels))
	for y := range rows {
		rows[y] = make([]string, len(h.XLabels)+1)
		rows[y][0] = h.YLabels[y]
	}
	for _, c := range h.Data {
		rows[c.Y][c.X+1] = FormatCompactCurrency(c.Value)
	}
	fmt.Fprint(buf, renderTable(table{
		Title:   "Sensitivity: Rental Outperformance",
		Headers: headers,
		Rows:    rows,
	}))
}
