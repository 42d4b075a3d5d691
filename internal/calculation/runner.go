package calculation

import (
	"context"
	"sync"

	"github.com/rpgo/rental-calculator/internal/domain"
)

// RunResult is what a Runner delivers for the newest submission
type RunResult struct {
	Generation uint64
	Summary    *domain.MonteCarloSummary
	Err        error
}

// Runner serializes Monte Carlo requests from an interactive caller. Each Submit
// cancels and supersedes the previous run; only the newest run's result reaches the
// deliver callback and stale completions are dropped.
type Runner struct {
	Logger Logger

	simulate func(ctx context.Context, in domain.Inputs) (*domain.MonteCarloSummary, error)
	deliver  func(RunResult)

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	wg         sync.WaitGroup
}

// NewRunner creates a Runner that executes runs on sim and hands the newest result to deliver.
// deliver runs while the runner is locked and must not call back into it.
func NewRunner(sim *MonteCarloSimulator, deliver func(RunResult)) *Runner {
	return &Runner{
		Logger:   NopLogger{},
		simulate: sim.Run,
		deliver:  deliver,
	}
}

// SetLogger sets the logger for the runner. If nil is provided, a no-op logger is used.
func (r *Runner) SetLogger(l Logger) {
	if l == nil {
		r.Logger = NopLogger{}
		return
	}
	r.Logger = l
}

// Submit starts a run for in and returns its generation number. Any run still in
// flight is cancelled and its result will be discarded.
func (r *Runner) Submit(ctx context.Context, in domain.Inputs) uint64 {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	r.generation++
	gen := r.generation
	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.wg.Add(1)
	r.mu.Unlock()

	go func() {
		defer r.wg.Done()
		defer cancel()

		summary, err := r.simulate(runCtx, in)

		r.mu.Lock()
		defer r.mu.Unlock()
		if gen != r.generation {
			r.Logger.Debugf("discarding stale monte carlo result (generation %d, current %d)", gen, r.generation)
			return
		}
		if r.deliver != nil {
			r.deliver(RunResult{Generation: gen, Summary: summary, Err: err})
		}
	}()
	return gen
}

// Cancel stops the in-flight run, if any. Its result is discarded.
func (r *Runner) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.generation++
}

// Wait blocks until every submitted run has returned
func (r *Runner) Wait() {
	r.wg.Wait()
}
