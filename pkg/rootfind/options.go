package rootfind

import (
	"fmt"
	"math"
)

// Func is a scalar real evaluator. It must be pure and deterministic.
type Func func(x float64) float64

// Stop holds the termination policy shared by all engines.
type Stop struct {
	// MaxIter bounds the number of loop passes (M for bisection, nmax otherwise).
	MaxIter int `json:"max_iter" yaml:"max_iter"`
	// StepTol is compared against |step|: the bracket half-width for
	// bisection, the correction d for Newton and secant.
	StepTol float64 `json:"step_tol" yaml:"step_tol"`
	// ValueTol is compared against |f(x)| at the newest iterate.
	ValueTol float64 `json:"value_tol" yaml:"value_tol"`
}

// DefaultStop matches the reference comparison: 100 passes, 1e-12 on both
// step and value.
func DefaultStop() Stop {
	return Stop{MaxIter: 100, StepTol: 1e-12, ValueTol: 1e-12}
}

// Validate reports option errors wrapped in ErrInvalidOptions.
func (s Stop) Validate() error {
	if s.MaxIter < 1 {
		return fmt.Errorf("%w: max_iter must be >= 1, got %d", ErrInvalidOptions, s.MaxIter)
	}
	if err := checkTol("step_tol", s.StepTol); err != nil {
		return err
	}
	return checkTol("value_tol", s.ValueTol)
}

// met applies the convergence test. The step test is reported first when
// both hold.
func (s Stop) met(step, fx float64) (Criterion, bool) {
	if math.Abs(step) < s.StepTol {
		return StepTolerance, true
	}
	if math.Abs(fx) < s.ValueTol {
		return ValueTolerance, true
	}
	return CriterionNone, false
}

func checkTol(name string, v float64) error {
	if math.IsNaN(v) || v < 0 {
		return fmt.Errorf("%w: %s must be a non-negative number, got %v", ErrInvalidOptions, name, v)
	}
	return nil
}

func checkPoint(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidOptions, name, v)
	}
	return nil
}

// BisectOptions configures Bisect.
type BisectOptions struct {
	Stop
	Observer Observer
}

// NewtonOptions configures Newton.
type NewtonOptions struct {
	Stop
	// DerivTol is the floor on |f'(x)| below which the step is refused.
	DerivTol float64
	Observer Observer
}

// Validate checks the shared stop policy and DerivTol.
func (o NewtonOptions) Validate() error {
	if err := o.Stop.Validate(); err != nil {
		return err
	}
	return checkTol("deriv_tol", o.DerivTol)
}

// SecantOptions configures Secant.
type SecantOptions struct {
	Stop
	// DiffTol is the floor on |f(x_cur) - f(x_prev)| below which the
	// divided difference is refused.
	DiffTol  float64
	Observer Observer
}

// Validate checks the shared stop policy and DiffTol.
func (o SecantOptions) Validate() error {
	if err := o.Stop.Validate(); err != nil {
		return err
	}
	return checkTol("diff_tol", o.DiffTol)
}

// Sign returns -1 for negative values and +1 otherwise. Zero counts as
// positive, so an exact root at an endpoint is treated like f > 0.
func Sign(v float64) int {
	if v < 0 {
		return -1
	}
	return 1
}
