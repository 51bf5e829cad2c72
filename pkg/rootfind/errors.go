package rootfind

import "errors"

var (
	// ErrNoSignChange is the bisection precondition failure: f(a) and f(b)
	// share a sign, so [a, b] is not a bracket.
	ErrNoSignChange = errors.New("rootfind: no sign change")

	// ErrSmallDerivative stops Newton's method before dividing by a slope
	// whose magnitude is below DerivTol.
	ErrSmallDerivative = errors.New("rootfind: derivative too small")

	// ErrSmallSlope stops the secant method when |f(x_cur) - f(x_prev)| is
	// below DiffTol.
	ErrSmallSlope = errors.New("rootfind: secant slope too small")

	// ErrEqualSeeds is returned by the secant method when x0 == x1.
	ErrEqualSeeds = errors.New("rootfind: secant seeds must differ")

	// ErrInvalidOptions wraps every option validation failure.
	ErrInvalidOptions = errors.New("rootfind: invalid options")
)
