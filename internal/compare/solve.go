package compare

import (
	"fmt"

	"rootfind/internal/config"
	"rootfind/internal/funcs"
	"rootfind/pkg/rootfind"
)

// Request is a single engine call outside a scenario.
type Request struct {
	Method   rootfind.Method
	Function *funcs.Function
	// Interval is the bisection bracket.
	Interval [2]float64
	// X0 seeds Newton; X0 and X1 seed the secant method.
	X0, X1 float64
	// Zero tolerances take the defaults.
	Tolerances config.Tolerances
	Observer   rootfind.Observer
}

// Solve runs one engine and returns the same record Compare produces.
// Only a missing function or an unknown method is an error; engine
// failures are reported in the run's outcome.
func Solve(req Request) (Run, error) {
	if req.Function == nil {
		return Run{}, fmt.Errorf("solve: function is required")
	}
	tol := req.Tolerances.WithDefaults()
	fn := req.Function
	run := Run{FunctionID: fn.ID, Function: fn.Name, Method: req.Method}

	var sum rootfind.Summary
	switch req.Method {
	case rootfind.MethodBisection:
		opts := tol.BisectOptions()
		opts.Observer = req.Observer
		iv := req.Interval
		run.Interval = &iv
		run.Attempts = 1
		sum = rootfind.Bisect(fn.F, iv[0], iv[1], opts).Summary()
	case rootfind.MethodNewton:
		run.Seeds = []float64{req.X0}
		if !fn.HasDerivative() {
			run.Outcome = rootfind.PrecursorFailed
			run.Reason = ErrNoDerivative.Error()
			return run, nil
		}
		opts := tol.NewtonOptions()
		opts.Observer = req.Observer
		sum = rootfind.Newton(fn.F, fn.FPrime, req.X0, opts).Summary()
	case rootfind.MethodSecant:
		run.Seeds = []float64{req.X0, req.X1}
		opts := tol.SecantOptions()
		opts.Observer = req.Observer
		sum = rootfind.Secant(fn.F, req.X0, req.X1, opts).Summary()
	default:
		return Run{}, fmt.Errorf("solve: unknown method %q", req.Method)
	}

	fill(&run, sum)
	return run, nil
}
