package rootfind

import "fmt"

// Bisect halves the bracket [a, b] until the half-width drops below StepTol,
// |f(c)| drops below ValueTol, or MaxIter midpoints have been evaluated.
//
// f(a) and f(b) must differ in Sign; otherwise the run ends with
// PrecursorFailed and ErrNoSignChange before any midpoint is evaluated.
// When the precondition holds at least one midpoint is always evaluated,
// even if f(a) is already within ValueTol of zero.
func Bisect(f Func, a, b float64, opts BisectOptions) Result[BisectStep] {
	if err := validateBisect(a, b, opts); err != nil {
		return fail[BisectStep](MethodBisection, err, nil, nil)
	}

	fa, fb := f(a), f(b)
	if Sign(fa) == Sign(fb) {
		reason := fmt.Errorf("%w: f(%g)=%g, f(%g)=%g", ErrNoSignChange, a, fa, b, fb)
		opts.Observer.emit(Event{Method: MethodBisection, Outcome: PrecursorFailed, Reason: reason})
		return fail[BisectStep](MethodBisection, reason, nil, nil)
	}

	res := Result[BisectStep]{
		Method:   MethodBisection,
		Outcome:  Exhausted,
		Iterates: make([]Iterate, 0, min(opts.MaxIter, 64)),
		Steps:    make([]BisectStep, 0, min(opts.MaxIter, 64)),
	}

	for i := 1; i <= opts.MaxIter; i++ {
		e := (b - a) / 2
		c := a + e
		fc := f(c)

		res.Iterates = append(res.Iterates, Iterate{X: c, FX: fc})
		res.Steps = append(res.Steps, BisectStep{Iter: i, A: a, B: b, HalfWidth: e, C: c, FC: fc})
		opts.Observer.emit(Event{Method: MethodBisection, Iter: i, Iterate: Iterate{X: c, FX: fc}})

		if crit, ok := opts.met(e, fc); ok {
			res.Outcome, res.Criterion = Converged, crit
			break
		}

		// fa is the value cached on entry to this pass, never one just replaced.
		if Sign(fc) != Sign(fa) {
			b = c
		} else {
			a, fa = c, fc
		}
	}

	last, _ := res.Last()
	opts.Observer.emit(Event{Method: MethodBisection, Iter: len(res.Steps), Iterate: last, Outcome: res.Outcome})
	return res
}

func validateBisect(a, b float64, opts BisectOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if err := checkPoint("a", a); err != nil {
		return err
	}
	return checkPoint("b", b)
}
