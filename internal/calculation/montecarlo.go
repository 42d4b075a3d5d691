package calculation

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/rpgo/rental-calculator/internal/domain"
)

// MonteCarloSimulator estimates the distribution of terminal wealth for both strategies
// by randomizing rent growth, appreciation, vacancy, expense growth and index returns
// every year of every trial. Financing terms stay deterministic.
type MonteCarloSimulator struct {
	Workers   int
	Seed      int64
	NewSource SourceFactory
	Logger    Logger
}

// MonteCarloConfig holds configuration for Monte Carlo simulations
type MonteCarloConfig struct {
	Workers   int           // defaults to runtime.NumCPU()
	Seed      int64         // 0 picks a fresh seed
	NewSource SourceFactory // defaults to NewMathRandSource
}

// NewMonteCarloSimulator creates a new Monte Carlo simulator
func NewMonteCarloSimulator(config MonteCarloConfig) *MonteCarloSimulator {
	if config.Seed == 0 {
		config.Seed = seedFunc()
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.NewSource == nil {
		config.NewSource = NewMathRandSource
	}
	return &MonteCarloSimulator{
		Workers:   config.Workers,
		Seed:      config.Seed,
		NewSource: config.NewSource,
		Logger:    NopLogger{},
	}
}

// SetLogger sets the logger for the simulator. If nil is provided, a no-op logger is used.
func (mcs *MonteCarloSimulator) SetLogger(l Logger) {
	if l == nil {
		mcs.Logger = NopLogger{}
		return
	}
	mcs.Logger = l
}

// trialPlan is the deterministic part of every trial, computed once per run
type trialPlan struct {
	in                domain.Inputs
	years             int
	totalInvested     float64
	base              incomeLevels
	balances          []float64
	payments          []float64
	interest          []float64
	depreciation      []float64
	totalDepreciation float64
}

func newTrialPlan(in domain.Inputs) *trialPlan {
	years := in.HoldingPeriodYears
	loan := NewLoanSchedule(in.LoanAmount(), in.Property.InterestRate, in.Property.LoanTermYears)
	p := &trialPlan{
		in:                in,
		years:             years,
		totalInvested:     in.TotalInvested(),
		base:              baseLevels(in),
		balances:          make([]float64, years),
		payments:          make([]float64, years),
		interest:          make([]float64, years),
		depreciation:      make([]float64, years),
		totalDepreciation: CumulativeDepreciation(in.Property.AfterRepairValue, in.Tax.LandValuePercent, years),
	}
	for y := 1; y <= years; y++ {
		am := loan.Annual(y)
		p.balances[y-1] = loan.BalanceAt(y)
		p.payments[y-1] = am.TotalPayment
		p.interest[y-1] = am.TotalInterest
		p.depreciation[y-1] = DepreciationForYear(in.Property.AfterRepairValue, in.Tax.LandValuePercent, y)
	}
	return p
}

// trialOutcome is the terminal wealth of both strategies in one trial
type trialOutcome struct {
	rental float64
	index  float64
}

// runTrial simulates one independent path. Year-end wealth is written to column
// trial of rentalByYear/indexByYear, which no other trial touches.
func (p *trialPlan) runTrial(rng RandomSource, trial int, rentalByYear, indexByYear [][]float64) trialOutcome {
	in := p.in
	sd := in.MonteCarlo

	levels := p.base
	value := in.Property.AfterRepairValue
	indexValue := p.totalInvested
	var cumulativeCashFlow float64

	for y := 0; y < p.years; y++ {
		rentGrowth := SampleNormal(rng, in.RentalIncome.AnnualRentGrowthPercent, sd.RentGrowthStdDev) / 100
		appreciation := SampleNormal(rng, in.Property.AnnualAppreciationPercent, sd.AppreciationStdDev) / 100
		vacancy := min(50, max(0, SampleNormal(rng, in.RentalIncome.VacancyRatePercent, sd.VacancyStdDev)))
		expenseGrowth := SampleNormal(rng, in.OperatingExpenses.AnnualExpenseGrowthPercent, sd.ExpenseGrowthStdDev) / 100
		grossIndexReturn := SampleNormal(rng, in.IndexFund.AnnualReturnPercent, sd.IndexReturnStdDev)

		value *= 1 + appreciation
		// levels compound from the prior year's level, not from the base
		if y > 0 {
			levels = levels.grow(1+rentGrowth, 1+expenseGrowth)
		}

		cf := operatingCashFlow(levels, vacancy, value, in.OperatingExpenses)
		preTaxCashFlow := cf.NOI - p.payments[y]
		_, taxBenefit := TaxBenefit(cf.NOI, p.interest[y], p.depreciation[y], in.Tax.MarginalTaxRate)
		afterTaxCashFlow := preTaxCashFlow + taxBenefit
		cumulativeCashFlow += afterTaxCashFlow

		indexValue *= 1 + EffectiveIndexReturn(grossIndexReturn, in.IndexFund)
		indexValue += opportunityContribution(afterTaxCashFlow)

		rentalByYear[y][trial] = value - p.balances[y] + cumulativeCashFlow
		indexByYear[y][trial] = indexValue
	}

	sale := CalculateSaleProceeds(SaleTermsFor(in, value, p.balances[p.years-1], p.totalDepreciation))
	return trialOutcome{
		rental: sale.NetSaleProceeds + cumulativeCashFlow,
		index:  indexValue,
	}
}

// Run executes the Monte Carlo simulation. Trials are split across workers,
// each with its own random source, so a fixed seed and worker count reproduce the
// result exactly. Any failure aborts the whole run; no partial summary is returned.
// Unset Workers, NewSource or Logger fall back to the NewMonteCarloSimulator defaults.
func (mcs *MonteCarloSimulator) Run(ctx context.Context, in domain.Inputs) (*domain.MonteCarloSummary, error) {
	if err := validateSimulation(in); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSimulationFailed, err)
	}

	count := in.MonteCarlo.SimulationCount
	years := in.HoldingPeriodYears
	plan := newTrialPlan(in)

	rentalByYear := make([][]float64, years)
	indexByYear := make([][]float64, years)
	for y := range rentalByYear {
		rentalByYear[y] = make([]float64, count)
		indexByYear[y] = make([]float64, count)
	}
	outcomes := make([]trialOutcome, count)

	logger := mcs.Logger
	if logger == nil {
		logger = NopLogger{}
	}
	newSource := mcs.NewSource
	if newSource == nil {
		newSource = NewMathRandSource
	}
	workers := mcs.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, count)
	logger.Debugf("monte carlo: %d trials x %d years on %d workers (seed %d)", count, years, workers, mcs.Seed)

	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start, end := w*count/workers, (w+1)*count/workers
		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					errs[w] = fmt.Errorf("worker %d panicked: %v", w, r)
				}
			}()

			rng := newSource(workerSeed(mcs.Seed, w))
			for t := start; t < end; t++ {
				if err := ctx.Err(); err != nil {
					errs[w] = err
					return
				}
				outcomes[t] = plan.runTrial(rng, t, rentalByYear, indexByYear)
			}
		}(w, start, end)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			logger.Errorf("monte carlo run aborted: %v", err)
			return nil, fmt.Errorf("%w: %w", ErrSimulationFailed, err)
		}
	}

	summary := aggregate(outcomes, rentalByYear, indexByYear)
	summary.NumSimulations = count
	summary.Seed = mcs.Seed
	logger.Debugf("monte carlo complete: P(rental wins)=%.1f%%", summary.ProbRentalWins)
	return summary, nil
}

func validateSimulation(in domain.Inputs) error {
	if err := checkPreconditions(in); err != nil {
		return err
	}
	if in.MonteCarlo.SimulationCount < 1 {
		return &InvalidInputError{Field: "monte_carlo.simulation_count", Reason: "must be at least 1"}
	}
	sd := in.MonteCarlo
	for _, f := range []domain.Field{
		{Path: "monte_carlo.rent_growth_std_dev", Value: sd.RentGrowthStdDev},
		{Path: "monte_carlo.appreciation_std_dev", Value: sd.AppreciationStdDev},
		{Path: "monte_carlo.vacancy_std_dev", Value: sd.VacancyStdDev},
		{Path: "monte_carlo.expense_growth_std_dev", Value: sd.ExpenseGrowthStdDev},
		{Path: "monte_carlo.index_return_std_dev", Value: sd.IndexReturnStdDev},
	} {
		if f.Value < 0 {
			return &InvalidInputError{Field: f.Path, Reason: "standard deviation cannot be negative"}
		}
	}
	return nil
}

// aggregate sorts each year's samples in place and reduces them to bands and
// terminal statistics.
func aggregate(outcomes []trialOutcome, rentalByYear, indexByYear [][]float64) *domain.MonteCarloSummary {
	years := len(rentalByYear)
	bands := domain.PercentileBands{Years: make([]int, years)}
	for y := 0; y < years; y++ {
		bands.Years[y] = y + 1
		sort.Float64s(rentalByYear[y])
		sort.Float64s(indexByYear[y])
		appendPercentiles(&bands.Rental, rentalByYear[y])
		appendPercentiles(&bands.Index, indexByYear[y])
	}

	n := len(outcomes)
	rental := make([]float64, n)
	index := make([]float64, n)
	var rentalSum, indexSum float64
	wins := 0
	for i, o := range outcomes {
		rental[i], index[i] = o.rental, o.index
		rentalSum += o.rental
		indexSum += o.index
		if o.rental > o.index {
			wins++
		}
	}
	sort.Float64s(rental)
	sort.Float64s(index)

	return &domain.MonteCarloSummary{
		RentalMean:     rentalSum / float64(n),
		RentalMedian:   Percentile(rental, 50),
		RentalBest:     rental[n-1],
		RentalWorst:    rental[0],
		IndexMean:      indexSum / float64(n),
		IndexMedian:    Percentile(index, 50),
		IndexBest:      index[n-1],
		IndexWorst:     index[0],
		ProbRentalWins: float64(wins) / float64(n) * 100,
		Bands:          bands,
	}
}

func appendPercentiles(s *domain.PercentileSeries, sorted []float64) {
	s.P10 = append(s.P10, Percentile(sorted, 10))
	s.P25 = append(s.P25, Percentile(sorted, 25))
	s.P50 = append(s.P50, Percentile(sorted, 50))
	s.P75 = append(s.P75, Percentile(sorted, 75))
	s.P90 = append(s.P90, Percentile(sorted, 90))
}
