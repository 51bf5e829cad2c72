package config

import (
	"errors"
	"fmt"

	"rootfind/pkg/rootfind"
)

// Scenario is a named comparison run: a set of functions plus the seeds and
// tolerances every engine is driven with.
type Scenario struct {
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Tolerances  Tolerances   `json:"tolerances" yaml:"tolerances"`
	Bisection   BisectionSet `json:"bisection" yaml:"bisection"`
	Newton      NewtonSet    `json:"newton" yaml:"newton"`
	Secant      SecantSet    `json:"secant" yaml:"secant"`
	Functions   []Function   `json:"functions" yaml:"functions"`
}

// Tolerances feeds the three option structs of package rootfind.
type Tolerances struct {
	MaxIter  int     `json:"max_iter" yaml:"max_iter"`
	StepTol  float64 `json:"step_tol" yaml:"step_tol"`
	ValueTol float64 `json:"value_tol" yaml:"value_tol"`
	DerivTol float64 `json:"deriv_tol" yaml:"deriv_tol"`
	DiffTol  float64 `json:"diff_tol" yaml:"diff_tol"`
}

// BisectionSet lists candidate brackets, tried in order.
type BisectionSet struct {
	Intervals [][2]float64 `json:"intervals" yaml:"intervals"`
}

// NewtonSet is the Newton seed.
type NewtonSet struct {
	X0 float64 `json:"x0" yaml:"x0"`
}

// SecantSet holds the two secant seeds.
type SecantSet struct {
	X0 float64 `json:"x0" yaml:"x0"`
	X1 float64 `json:"x1" yaml:"x1"`
}

// Function is one test function. The per-method blocks override the
// scenario-wide seeds when set.
type Function struct {
	ID         string        `json:"id" yaml:"id"`
	Name       string        `json:"name,omitempty" yaml:"name,omitempty"`
	Expr       string        `json:"expr" yaml:"expr"`
	Derivative string        `json:"derivative,omitempty" yaml:"derivative,omitempty"`
	Bisection  *BisectionSet `json:"bisection,omitempty" yaml:"bisection,omitempty"`
	Newton     *NewtonSet    `json:"newton,omitempty" yaml:"newton,omitempty"`
	Secant     *SecantSet    `json:"secant,omitempty" yaml:"secant,omitempty"`
}

// DefaultTolerances mirrors rootfind.DefaultStop with 1e-12 guards.
func DefaultTolerances() Tolerances {
	s := rootfind.DefaultStop()
	return Tolerances{MaxIter: s.MaxIter, StepTol: s.StepTol, ValueTol: s.ValueTol, DerivTol: 1e-12, DiffTol: 1e-12}
}

// WithDefaults fills every zero field from DefaultTolerances.
func (t Tolerances) WithDefaults() Tolerances {
	d := DefaultTolerances()
	if t.MaxIter == 0 {
		t.MaxIter = d.MaxIter
	}
	if t.StepTol == 0 {
		t.StepTol = d.StepTol
	}
	if t.ValueTol == 0 {
		t.ValueTol = d.ValueTol
	}
	if t.DerivTol == 0 {
		t.DerivTol = d.DerivTol
	}
	if t.DiffTol == 0 {
		t.DiffTol = d.DiffTol
	}
	return t
}

// Stop converts to the shared engine stop policy.
func (t Tolerances) Stop() rootfind.Stop {
	return rootfind.Stop{MaxIter: t.MaxIter, StepTol: t.StepTol, ValueTol: t.ValueTol}
}

// BisectOptions, NewtonOptions and SecantOptions build engine options.
func (t Tolerances) BisectOptions() rootfind.BisectOptions {
	return rootfind.BisectOptions{Stop: t.Stop()}
}

func (t Tolerances) NewtonOptions() rootfind.NewtonOptions {
	return rootfind.NewtonOptions{Stop: t.Stop(), DerivTol: t.DerivTol}
}

func (t Tolerances) SecantOptions() rootfind.SecantOptions {
	return rootfind.SecantOptions{Stop: t.Stop(), DiffTol: t.DiffTol}
}

// IntervalsFor returns the brackets for fn, honouring its override.
func (s *Scenario) IntervalsFor(fn Function) [][2]float64 {
	if fn.Bisection != nil && len(fn.Bisection.Intervals) > 0 {
		return fn.Bisection.Intervals
	}
	return s.Bisection.Intervals
}

// NewtonFor returns the Newton seed for fn.
func (s *Scenario) NewtonFor(fn Function) NewtonSet {
	if fn.Newton != nil {
		return *fn.Newton
	}
	return s.Newton
}

// SecantFor returns the secant seeds for fn.
func (s *Scenario) SecantFor(fn Function) SecantSet {
	if fn.Secant != nil {
		return *fn.Secant
	}
	return s.Secant
}

// Validate checks the scenario before any function is compiled.
func (s *Scenario) Validate() error {
	var errs []error
	if s.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if len(s.Functions) == 0 {
		errs = append(errs, errors.New("at least one function is required"))
	}
	if err := s.Tolerances.Stop().Validate(); err != nil {
		errs = append(errs, err)
	}
	if s.Tolerances.DerivTol < 0 || s.Tolerances.DiffTol < 0 {
		errs = append(errs, errors.New("deriv_tol and diff_tol must be non-negative"))
	}
	seen := make(map[string]bool, len(s.Functions))
	for i, fn := range s.Functions {
		if fn.ID == "" {
			errs = append(errs, fmt.Errorf("functions[%d]: id is required", i))
		} else if seen[fn.ID] {
			errs = append(errs, fmt.Errorf("functions[%d]: duplicate id %q", i, fn.ID))
		}
		seen[fn.ID] = true
		if fn.Expr == "" {
			errs = append(errs, fmt.Errorf("function %q: expr is required", fn.ID))
		}
		if sec := s.SecantFor(fn); sec.X0 == sec.X1 {
			errs = append(errs, fmt.Errorf("function %q: secant seeds must differ (x0 = x1 = %g)", fn.ID, sec.X0))
		}
		for _, iv := range s.IntervalsFor(fn) {
			if iv[0] == iv[1] {
				errs = append(errs, fmt.Errorf("function %q: empty interval [%g, %g]", fn.ID, iv[0], iv[1]))
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("scenario %q: %w", s.Name, errors.Join(errs...))
	}
	return nil
}
