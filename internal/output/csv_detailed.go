package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// detailedHeader is the year-by-year export layout
var detailedHeader = []string{
	"Year",
	"Property Value",
	"Loan Balance",
	"Equity",
	"Gross Rent",
	"Vacancy",
	"Effective Income",
	"Total Expenses",
	"NOI",
	"Mortgage Payment",
	"Pre-Tax Cash Flow",
	"Tax Benefit",
	"After-Tax Cash Flow",
	"Cash-on-Cash Return",
	"Cumulative Cash Flow",
	"Total Rental Wealth",
	"Stock Portfolio Value",
}

// CSVDetailedExporter exports one row per holding year with display-formatted
// currency and percentages.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string      { return "detailed-csv" }
func (c CSVDetailedExporter) Extension() string { return "csv" }

func (c CSVDetailedExporter) Format(r *Report) ([]byte, error) {
	if r.Projection == nil {
		return nil, fmt.Errorf("%w: projection", ErrMissingSection)
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(detailedHeader); err != nil {
		return nil, err
	}
	for _, yr := range r.Projection.YearResults {
		row := []string{
			intToString(yr.Year),
			FormatCurrency(yr.PropertyValue),
			FormatCurrency(yr.LoanBalance),
			FormatCurrency(yr.Equity),
			FormatCurrency(yr.GrossRent),
			FormatCurrency(yr.Vacancy),
			FormatCurrency(yr.EffectiveIncome),
			FormatCurrency(yr.TotalExpenses),
			FormatCurrency(yr.NOI),
			FormatCurrency(yr.MortgagePayment),
			FormatCurrency(yr.PreTaxCashFlow),
			FormatCurrency(yr.TaxBenefit),
			FormatCurrency(yr.AfterTaxCashFlow),
			FormatPercentage(yr.CashOnCashReturn),
			FormatCurrency(yr.CumulativeCashFlow),
			FormatCurrency(yr.TotalRentalWealth),
			FormatCurrency(yr.IndexFundValue),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
