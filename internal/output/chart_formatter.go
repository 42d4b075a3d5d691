package output

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/rpgo/rental-calculator/internal/calculation"
	"github.com/rpgo/rental-calculator/internal/domain"
)

const (
	rentalColor = "e5953e" // amber
	indexColor  = "3b82f6" // blue
)

// ChartFormatter renders the wealth curves of both strategies as a PNG line chart.
// When a Monte Carlo summary is present its P10 and P90 bands are drawn dashed.
type ChartFormatter struct{}

func (c ChartFormatter) Name() string      { return "chart" }
func (c ChartFormatter) Extension() string { return "png" }

func (c ChartFormatter) Format(r *Report) ([]byte, error) {
	if r.Projection == nil {
		return nil, fmt.Errorf("%w: projection", ErrMissingSection)
	}
	return RenderWealthChart(calculation.EquityGrowthSeries(r.Projection), r.MonteCarlo)
}

// RenderWealthChart returns raw PNG bytes for the wealth curves and optional bands.
func RenderWealthChart(g domain.EquityGrowth, mc *domain.MonteCarloSummary) ([]byte, error) {
	if len(g.Years) < 2 {
		return nil, fmt.Errorf("need at least 2 years to chart, got %d", len(g.Years))
	}

	xValues := yearsToFloats(g.Years)
	series := []chart.Series{
		lineSeries("Rental Wealth", rentalColor, 2.5, nil, xValues, g.RentalEquity),
		lineSeries("Index Fund", indexColor, 2.5, nil, xValues, g.IndexFund),
	}

	if mc != nil && len(mc.Bands.Years) == len(g.Years) {
		dash := []float64{5.0, 3.0}
		bx := yearsToFloats(mc.Bands.Years)
		series = append(series,
			lineSeries("Rental P10", rentalColor, 1, dash, bx, mc.Bands.Rental.P10),
			lineSeries("Rental P90", rentalColor, 1, dash, bx, mc.Bands.Rental.P90),
			lineSeries("Index P10", indexColor, 1, dash, bx, mc.Bands.Index.P10),
			lineSeries("Index P90", indexColor, 1, dash, bx, mc.Bands.Index.P90),
		)
	}

	graph := chart.Chart{
		Title:  "Rental Property vs. Index Fund",
		Width:  900,
		Height: 450,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Name: "Year",
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return FormatCompactCurrency(f)
				}
				return ""
			},
		},
		Series: series,
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

func lineSeries(name, hex string, width float64, dash, x, y []float64) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		Name: name,
		Style: chart.Style{
			StrokeColor:     drawing.ColorFromHex(hex),
			StrokeWidth:     width,
			StrokeDashArray: dash,
		},
		XValues: x,
		YValues: y,
	}
}

func yearsToFloats(years []int) []float64 {
	out := make([]float64, len(years))
	for i, y := range years {
		out[i] = float64(y)
	}
	return out
}
