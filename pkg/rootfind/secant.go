package rootfind

import (
	"fmt"
	"math"
)

// Secant runs the finite-difference analogue of Newton's method from the
// seeds x0 and x1.
//
// The iterate sequence starts with both seeds. Each pass forms the secant
// through (x_prev, f(x_prev)) and (x_cur, f(x_cur)) and moves to its
// x-intercept, then shifts the two-point window forward. When
// |f(x_cur) - f(x_prev)| < DiffTol the run ends with ErrSmallSlope.
func Secant(f Func, x0, x1 float64, opts SecantOptions) Result[SecantStep] {
	if err := validateSecant(x0, x1, opts); err != nil {
		return fail[SecantStep](MethodSecant, err, nil, nil)
	}

	prev, fprev := x0, f(x0)
	cur, fcur := x1, f(x1)
	res := Result[SecantStep]{
		Method:   MethodSecant,
		Outcome:  Exhausted,
		Iterates: []Iterate{{X: prev, FX: fprev}, {X: cur, FX: fcur}},
	}
	opts.Observer.emit(Event{Method: MethodSecant, Iterate: res.Iterates[0]})
	opts.Observer.emit(Event{Method: MethodSecant, Iterate: res.Iterates[1]})

	if x0 == x1 {
		res.Outcome = PrecursorFailed
		res.Reason = fmt.Errorf("%w: x0 = x1 = %g", ErrEqualSeeds, x0)
	}

	for i := 1; res.Outcome == Exhausted && i <= opts.MaxIter; i++ {
		diff := fcur - fprev
		if diff == 0 || math.Abs(diff) < opts.DiffTol {
			res.Outcome = PrecursorFailed
			res.Reason = fmt.Errorf("%w: |f(x_cur) - f(x_prev)| = %g at iteration %d", ErrSmallSlope, math.Abs(diff), i)
			break
		}

		d := fcur * (cur - prev) / diff
		next := cur - d
		fnext := f(next)

		res.Steps = append(res.Steps, SecantStep{
			Iter: i, XPrev: prev, FXPrev: fprev, XCur: cur, FXCur: fcur,
			Delta: d, Next: next, FNext: fnext,
		})
		res.Iterates = append(res.Iterates, Iterate{X: next, FX: fnext})
		opts.Observer.emit(Event{Method: MethodSecant, Iter: i, Iterate: Iterate{X: next, FX: fnext}})

		prev, fprev = cur, fcur
		cur, fcur = next, fnext
		if crit, ok := opts.met(d, fnext); ok {
			res.Outcome, res.Criterion = Converged, crit
		}
	}

	last, _ := res.Last()
	opts.Observer.emit(Event{Method: MethodSecant, Iter: len(res.Steps), Iterate: last, Outcome: res.Outcome, Reason: res.Reason})
	return res
}

func validateSecant(x0, x1 float64, opts SecantOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if err := checkPoint("x0", x0); err != nil {
		return err
	}
	return checkPoint("x1", x1)
}
