package domain

// PercentileSeries holds one value per holding year for each reported percentile
type PercentileSeries struct {
	P10 []float64 `json:"p10"`
	P25 []float64 `json:"p25"`
	P50 []float64 `json:"p50"`
	P75 []float64 `json:"p75"`
	P90 []float64 `json:"p90"`
}

// PercentileBands summarizes the year-by-year wealth distribution of both strategies
type PercentileBands struct {
	Years  []int            `json:"years"`
	Rental PercentileSeries `json:"rental"`
	Index  PercentileSeries `json:"index"`
}

// MonteCarloSummary represents the aggregated result of a Monte Carlo run
type MonteCarloSummary struct {
	RentalMean     float64         `json:"rental_mean"`
	RentalMedian   float64         `json:"rental_median"`
	RentalBest     float64         `json:"rental_best"`
	RentalWorst    float64         `json:"rental_worst"`
	IndexMean      float64         `json:"index_mean"`
	IndexMedian    float64         `json:"index_median"`
	IndexBest      float64         `json:"index_best"`
	IndexWorst     float64         `json:"index_worst"`
	ProbRentalWins float64         `json:"prob_rental_wins"` // percent of trials
	Bands          PercentileBands `json:"bands"`

	NumSimulations int   `json:"num_simulations"`
	Seed           int64 `json:"seed"`
}

// SensitivityCell is one point of a two-parameter sweep. X and Y are indexes into the
// swept value arrays; Value is the rounded outperformance.
type SensitivityCell struct {
	X     int     `json:"x"`
	Y     int     `json:"y"`
	Value float64 `json:"value"`
}

// SensitivityHeatmap is a labelled sweep ready for presentation
type SensitivityHeatmap struct {
	XLabels []string          `json:"x_labels"`
	YLabels []string          `json:"y_labels"`
	Data    []SensitivityCell `json:"data"`
	XName   string            `json:"x_name"`
	YName   string            `json:"y_name"`
}
