package calculation

import (
	"math"
	"math/rand"
	"time"
)

// seedFunc picks the seed when a simulator is built without one
var seedFunc = func() int64 { return time.Now().UnixNano() }

// SetSeedFunc replaces the fallback seed provider. Tests use it to pin unseeded runs.
func SetSeedFunc(f func() int64) { seedFunc = f }

// RandomSource supplies uniform draws in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// SourceFactory creates an independent RandomSource for one worker
type SourceFactory func(seed int64) RandomSource

// NewMathRandSource is the default SourceFactory backed by math/rand
func NewMathRandSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// BoxMuller returns a standard normal deviate from two uniform draws.
// Zero draws are rejected so the logarithm stays finite.
func BoxMuller(rng RandomSource) float64 {
	var u, v float64
	for u == 0 {
		u = rng.Float64()
	}
	for v == 0 {
		v = rng.Float64()
	}
	return math.Sqrt(-2.0*math.Log(u)) * math.Cos(2.0*math.Pi*v)
}

// SampleNormal draws from N(mean, stdDev)
func SampleNormal(rng RandomSource, mean, stdDev float64) float64 {
	return mean + stdDev*BoxMuller(rng)
}

// Percentile interpolates linearly between order statistics of an ascending slice.
// p is in [0, 100]; the rank is p/100 * (n-1). An empty slice yields 0.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(idx))
	upper := int(math.Ceil(idx))
	if lower == upper {
		return sorted[lower]
	}
	return sorted[lower] + (sorted[upper]-sorted[lower])*(idx-float64(lower))
}

// workerSeed derives a distinct, reproducible seed for each worker using the
// splitmix64 finalizer so adjacent workers do not get correlated streams.
func workerSeed(seed int64, worker int) int64 {
	z := uint64(seed) + uint64(worker+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}
