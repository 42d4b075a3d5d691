package calculation

import (
	"errors"
	"fmt"
	"math"

	"github.com/rpgo/rental-calculator/internal/domain"
)

var (
	// ErrInvalidInput is wrapped by every InvalidInputError
	ErrInvalidInput = errors.New("invalid input")
	// ErrSimulationFailed is wrapped by any error that aborts a Monte Carlo run
	ErrSimulationFailed = errors.New("monte carlo simulation failed")
)

// InvalidInputError reports an input that violates an engine precondition
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// checkPreconditions rejects inputs the projection math cannot handle. It does not
// enforce business ranges; that is the job of the config validators.
func checkPreconditions(in domain.Inputs) error {
	for _, f := range in.Fields() {
		if math.IsNaN(f.Value) || math.IsInf(f.Value, 0) {
			return &InvalidInputError{Field: f.Path, Reason: "must be a finite number"}
		}
	}
	if in.HoldingPeriodYears < 1 {
		return &InvalidInputError{Field: "holding_period_years", Reason: "must be at least 1"}
	}
	if in.Property.LoanTermYears < 1 {
		return &InvalidInputError{Field: "property.loan_term_years", Reason: "must be at least 1"}
	}
	if in.TotalInvested() <= 0 {
		return &InvalidInputError{Field: "property.down_payment_percent", Reason: "total invested must be positive"}
	}
	return nil
}
