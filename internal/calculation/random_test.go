package calculation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// sequenceSource replays fixed uniform draws
type sequenceSource struct {
	values []float64
	i      int
}

func (s *sequenceSource) Float64() float64 {
	v := s.values[s.i%len(s.values)]
	s.i++
	return v
}

func TestPercentile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	assert.Equal(t, 1.0, Percentile(sorted, 0))
	assert.Equal(t, 5.0, Percentile(sorted, 50))
	assert.Equal(t, 9.0, Percentile(sorted, 100))
	assert.InDelta(t, 1.8, Percentile(sorted, 10), 1e-12)
	assert.InDelta(t, 3.0, Percentile(sorted, 25), 1e-12)

	assert.Equal(t, 0.0, Percentile(nil, 50))
	assert.Equal(t, 42.0, Percentile([]float64{42}, 90))
	assert.InDelta(t, 15, Percentile([]float64{10, 20}, 50), 1e-12)
}

func TestBoxMuller(t *testing.T) {
	// u = e^-0.5 gives sqrt(-2 ln u) = 1; v = 0 gives cos = 1, but zero is rejected
	src := &sequenceSource{values: []float64{math.Exp(-0.5), 0, 0.5}}
	assert.InDelta(t, -1, BoxMuller(src), 1e-12)
	assert.Equal(t, 3, src.i)
}

func TestSampleNormalZeroStdDev(t *testing.T) {
	src := NewMathRandSource(7)
	for i := 0; i < 100; i++ {
		assert.Equal(t, 3.5, SampleNormal(src, 3.5, 0))
	}
}

func TestSampleNormalMoments(t *testing.T) {
	src := NewMathRandSource(12345)
	const n = 20000
	var sum, sumSq float64
	for i := 0; i < n; i++ {
		x := SampleNormal(src, 10, 2)
		sum += x
		sumSq += x * x
	}
	mean := sum / n
	sd := math.Sqrt(sumSq/n - mean*mean)
	assert.InDelta(t, 10, mean, 0.1)
	assert.InDelta(t, 2, sd, 0.1)
}

func TestWorkerSeedDistinct(t *testing.T) {
	seen := map[int64]bool{}
	for w := 0; w < 64; w++ {
		s := workerSeed(42, w)
		assert.False(t, seen[s], "duplicate seed for worker %d", w)
		seen[s] = true
	}
	assert.Equal(t, workerSeed(42, 3), workerSeed(42, 3))
	assert.NotEqual(t, workerSeed(42, 0), workerSeed(43, 0))
}
