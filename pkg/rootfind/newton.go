package rootfind

import (
	"fmt"
	"math"
)

// Newton runs the tangent-line iteration x <- x - f(x)/f'(x) from x0.
//
// The iterate sequence starts with (x0, f(x0)). Each pass records the
// tangent used, (x, f(x), f'(x)), before moving to the new estimate. A
// derivative with |f'(x)| < DerivTol (or exactly zero) ends the run with
// ErrSmallDerivative; the division is never attempted.
func Newton(f, fprime Func, x0 float64, opts NewtonOptions) Result[TangentStep] {
	if err := opts.Validate(); err != nil {
		return fail[TangentStep](MethodNewton, err, nil, nil)
	}
	if err := checkPoint("x0", x0); err != nil {
		return fail[TangentStep](MethodNewton, err, nil, nil)
	}

	x, fx := x0, f(x0)
	res := Result[TangentStep]{
		Method:   MethodNewton,
		Outcome:  Exhausted,
		Iterates: []Iterate{{X: x, FX: fx}},
	}
	opts.Observer.emit(Event{Method: MethodNewton, Iterate: Iterate{X: x, FX: fx}})

	for i := 1; i <= opts.MaxIter; i++ {
		fp := fprime(x)
		if fp == 0 || math.Abs(fp) < opts.DerivTol {
			res.Outcome = PrecursorFailed
			res.Reason = fmt.Errorf("%w: |f'(%g)| = %g at iteration %d", ErrSmallDerivative, x, math.Abs(fp), i)
			break
		}

		d := fx / fp
		next := x - d
		fnext := f(next)

		res.Steps = append(res.Steps, TangentStep{Iter: i, X: x, FX: fx, FPrime: fp, Delta: d, Next: next, FNext: fnext})
		res.Iterates = append(res.Iterates, Iterate{X: next, FX: fnext})
		opts.Observer.emit(Event{Method: MethodNewton, Iter: i, Iterate: Iterate{X: next, FX: fnext}})

		x, fx = next, fnext
		if crit, ok := opts.met(d, fnext); ok {
			res.Outcome, res.Criterion = Converged, crit
			break
		}
	}

	last, _ := res.Last()
	opts.Observer.emit(Event{Method: MethodNewton, Iter: len(res.Steps), Iterate: last, Outcome: res.Outcome, Reason: res.Reason})
	return res
}
