package calculation

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/rpgo/rental-calculator/internal/domain"
)

// ErrUnknownGrid is returned by GridByName for a name with no built-in grid
var ErrUnknownGrid = errors.New("unknown sensitivity grid")

// Setter overrides one input of a copied snapshot
type Setter func(in *domain.Inputs, v float64)

// Sweep reruns the projection for every (x, y) pair and records the rounded
// outperformance. Cells are emitted x-major. base is never modified.
func (ce *CalculationEngine) Sweep(base domain.Inputs, xs, ys []float64, setX, setY Setter) ([]domain.SensitivityCell, error) {
	cells := make([]domain.SensitivityCell, 0, len(xs)*len(ys))
	for xi, x := range xs {
		for yi, y := range ys {
			in := base
			setX(&in, x)
			setY(&in, y)
			out, err := ce.Project(in)
			if err != nil {
				return nil, fmt.Errorf("sensitivity cell (%v, %v): %w", x, y, err)
			}
			cells = append(cells, domain.SensitivityCell{
				X:     xi,
				Y:     yi,
				Value: math.Round(out.Summary.Outperformance),
			})
		}
	}
	ce.Logger.Debugf("sensitivity sweep complete: %d cells", len(cells))
	return cells, nil
}

// Grid is a named two-parameter sweep
type Grid struct {
	Name  string
	XName string
	YName string
	XS    []float64
	YS    []float64
	SetX  Setter
	SetY  Setter
}

var builtInGrids = map[string]Grid{
	"appreciation-vs-rate": {
		Name:  "appreciation-vs-rate",
		XName: "Appreciation",
		YName: "Interest Rate",
		XS:    []float64{1, 2, 3, 4, 5, 6},
		YS:    []float64{5, 5.5, 6, 6.5, 7, 7.5, 8},
		SetX:  func(in *domain.Inputs, v float64) { in.Property.AnnualAppreciationPercent = v },
		SetY:  func(in *domain.Inputs, v float64) { in.Property.InterestRate = v },
	},
	"rentgrowth-vs-vacancy": {
		Name:  "rentgrowth-vs-vacancy",
		XName: "Rent Growth",
		YName: "Vacancy Rate",
		XS:    []float64{1, 2, 3, 4, 5},
		YS:    []float64{2, 4, 6, 8, 10, 12},
		SetX:  func(in *domain.Inputs, v float64) { in.RentalIncome.AnnualRentGrowthPercent = v },
		SetY:  func(in *domain.Inputs, v float64) { in.RentalIncome.VacancyRatePercent = v },
	},
	"downpayment-vs-return": {
		Name:  "downpayment-vs-return",
		XName: "Down Payment",
		YName: "Stock Portfolio Return",
		XS:    []float64{10, 15, 20, 25, 30},
		YS:    []float64{6, 8, 10, 12, 14},
		SetX:  func(in *domain.Inputs, v float64) { in.Property.DownPaymentPercent = v },
		SetY:  func(in *domain.Inputs, v float64) { in.IndexFund.AnnualReturnPercent = v },
	},
}

// GridByName returns a built-in grid
func GridByName(name string) (Grid, error) {
	g, ok := builtInGrids[name]
	if !ok {
		return Grid{}, fmt.Errorf("%w: %s", ErrUnknownGrid, name)
	}
	return g, nil
}

// GridNames lists the built-in grids in sorted order
func GridNames() []string {
	names := make([]string, 0, len(builtInGrids))
	for n := range builtInGrids {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Heatmap sweeps g over base and labels the result
func (ce *CalculationEngine) Heatmap(base domain.Inputs, g Grid) (*domain.SensitivityHeatmap, error) {
	cells, err := ce.Sweep(base, g.XS, g.YS, g.SetX, g.SetY)
	if err != nil {
		return nil, err
	}
	return &domain.SensitivityHeatmap{
		XLabels: percentLabels(g.XS),
		YLabels: percentLabels(g.YS),
		Data:    cells,
		XName:   g.XName,
		YName:   g.YName,
	}, nil
}

func percentLabels(vs []float64) []string {
	labels := make([]string, len(vs))
	for i, v := range vs {
		labels[i] = strconv.FormatFloat(v, 'f', -1, 64) + "%"
	}
	return labels
}
