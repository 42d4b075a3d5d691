package calculation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/rental-calculator/internal/domain"
)

func TestSweep(t *testing.T) {
	ce := NewCalculationEngine()
	base := domain.DefaultInputs()
	snapshot := base

	xs := []float64{1, 3, 5}
	ys := []float64{6, 8}
	cells, err := ce.Sweep(base, xs, ys,
		func(in *domain.Inputs, v float64) { in.Property.AnnualAppreciationPercent = v },
		func(in *domain.Inputs, v float64) { in.IndexFund.AnnualReturnPercent = v },
	)
	require.NoError(t, err)
	require.Len(t, cells, 6)
	assert.Equal(t, snapshot, base)

	// x-major order
	assert.Equal(t, domain.SensitivityCell{X: 0, Y: 0, Value: cells[0].Value}, cells[0])
	assert.Equal(t, 0, cells[1].X)
	assert.Equal(t, 1, cells[1].Y)
	assert.Equal(t, 1, cells[2].X)

	for _, c := range cells {
		in := base
		in.Property.AnnualAppreciationPercent = xs[c.X]
		in.IndexFund.AnnualReturnPercent = ys[c.Y]
		out, err := ce.Project(in)
		require.NoError(t, err)
		assert.Equal(t, math.Round(out.Summary.Outperformance), c.Value)
	}

	// more appreciation helps the rental; a better index return hurts it
	assert.Greater(t, cells[4].Value, cells[0].Value)
	assert.Less(t, cells[1].Value, cells[0].Value)
}

func TestSweep_PropagatesInvalidCell(t *testing.T) {
	_, err := NewCalculationEngine().Sweep(domain.DefaultInputs(), []float64{10, 0}, []float64{1},
		func(in *domain.Inputs, v float64) { in.HoldingPeriodYears = int(v) },
		func(in *domain.Inputs, v float64) {},
	)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGridByName(t *testing.T) {
	assert.Equal(t, []string{"appreciation-vs-rate", "downpayment-vs-return", "rentgrowth-vs-vacancy"}, GridNames())

	g, err := GridByName("appreciation-vs-rate")
	require.NoError(t, err)
	assert.Equal(t, "Appreciation", g.XName)
	assert.Equal(t, "Interest Rate", g.YName)
	assert.Len(t, g.XS, 6)
	assert.Len(t, g.YS, 7)

	_, err = GridByName("nope")
	assert.ErrorIs(t, err, ErrUnknownGrid)
}

func TestHeatmap(t *testing.T) {
	g, err := GridByName("rentgrowth-vs-vacancy")
	require.NoError(t, err)

	h, err := NewCalculationEngine().Heatmap(domain.DefaultInputs(), g)
	require.NoError(t, err)
	assert.Equal(t, []string{"1%", "2%", "3%", "4%", "5%"}, h.XLabels)
	assert.Equal(t, []string{"2%", "4%", "6%", "8%", "10%", "12%"}, h.YLabels)
	assert.Equal(t, "Rent Growth", h.XName)
	assert.Equal(t, "Vacancy Rate", h.YName)
	assert.Len(t, h.Data, 30)

	d, err := GridByName("appreciation-vs-rate")
	require.NoError(t, err)
	assert.Equal(t, "5.5%", percentLabels(d.YS)[1])
}
